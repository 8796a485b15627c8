package controllers

import (
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/services/core/slot"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	SessionStore  contracts.SessionStore
	SlotGenerator *slot.Generator
}

func NewDoctorController(logger *zap.Logger, sessionStore contracts.SessionStore, slotGenerator *slot.Generator) *DoctorController {
	return &DoctorController{
		Log:           logger,
		SessionStore:  sessionStore,
		SlotGenerator: slotGenerator,
	}
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	doctors := ctrl.SessionStore.Doctors()
	ctrl.Log.Info("DoctorController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := ctrl.SessionStore.RefreshDoctors(r.Context()); err != nil {
		ctrl.Log.Error("DoctorController.Refresh error from SessionStore.RefreshDoctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RefreshDoctorsSuccessMessage, ctrl.SessionStore.Doctors())
}

// FindSlots previews the seven day grid of a doctor without opening a
// booking. The optional now query parameter pins the reference instant.
func (ctrl *DoctorController) FindSlots(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	ctrl.Log.Info("DoctorController.FindSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctorID),
	)

	now, ok, err := utils.ParseNowParam(r.URL.Query().Get(constvars.URLQueryParamNow))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidNowParam(err))
		return
	}
	if !ok {
		now = ctrl.SlotGenerator.Now()
	}

	doctor, found := ctrl.SessionStore.Doctor(doctorID)
	if !found {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrDoctorNotFound(doctorID))
		return
	}

	grid := slot.Generate(doctor, now)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSlotsSuccessMessage, responses.Slots{
		DoctorID:      doctorID,
		Grid:          grid,
		RosterVersion: ctrl.SessionStore.RosterVersion(),
	})
}
