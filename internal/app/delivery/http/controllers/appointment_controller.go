package controllers

import (
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log             *zap.Logger
	AppointmentView contracts.AppointmentView
}

func NewAppointmentController(logger *zap.Logger, appointmentView contracts.AppointmentView) *AppointmentController {
	return &AppointmentController{
		Log:             logger,
		AppointmentView: appointmentView,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	appointments, err := ctrl.AppointmentView.Load(r.Context())
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll error from AppointmentView.Load",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(appointments)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, presentAppointments(appointments))
}

func (ctrl *AppointmentController) Cancel(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	ctrl.Log.Info("AppointmentController.Cancel called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
	)

	if err := ctrl.AppointmentView.Cancel(r.Context(), appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.CancelSuccessFallbackMessage, presentAppointments(ctrl.AppointmentView.Appointments()))
}

func (ctrl *AppointmentController) Pay(w http.ResponseWriter, r *http.Request) {
	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if err := ctrl.AppointmentView.PayOnline(r.Context(), appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.PayOnlineStubMessage, nil)
}

func presentAppointments(appointments []models.Appointment) []responses.Appointment {
	presented := make([]responses.Appointment, 0, len(appointments))
	for _, appointment := range appointments {
		presented = append(presented, responses.Appointment{
			Appointment:       appointment,
			FormattedSlotDate: utils.FormatSlotDate(appointment.SlotDate),
		})
	}
	return presented
}
