package controllers

import (
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/app/models"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type BookingController struct {
	Log             *zap.Logger
	BookingWorkflow contracts.BookingWorkflow
}

func NewBookingController(logger *zap.Logger, bookingWorkflow contracts.BookingWorkflow) *BookingController {
	return &BookingController{
		Log:             logger,
		BookingWorkflow: bookingWorkflow,
	}
}

func (ctrl *BookingController) Open(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	var request requests.OpenBooking
	if err := decodeJSON(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("BookingController.Open called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, request.DoctorID),
	)

	now, _, err := utils.ParseNowParam(request.Now)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInvalidNowParam(err))
		return
	}

	view, err := ctrl.BookingWorkflow.Open(r.Context(), request.DoctorID, now)
	if err != nil {
		ctrl.Log.Error("BookingController.Open error from BookingWorkflow.Open",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.OpenBookingSuccessMessage, view)
}

// Select moves the day selection and, when slot_time is given, the time
// selection. The time is only checked against the grid on submit.
func (ctrl *BookingController) Select(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())

	var request requests.SelectSlot
	if err := decodeJSON(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if err := utils.ValidateStruct(&request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctrl.Log.Info("BookingController.Select called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSlotIndexKey, *request.SlotIndex),
		zap.String(constvars.LoggingSlotTimeKey, request.SlotTime),
	)

	view, err := ctrl.BookingWorkflow.SelectDay(r.Context(), *request.SlotIndex)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if request.SlotTime != "" {
		view, err = ctrl.BookingWorkflow.SelectTime(r.Context(), request.SlotTime)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, err)
			return
		}
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectSlotSuccessMessage, view)
}

func (ctrl *BookingController) Get(w http.ResponseWriter, r *http.Request) {
	ctrl.BookingWorkflow.RebuildIfStale(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetBookingSuccessMessage, ctrl.BookingWorkflow.View())
}

func (ctrl *BookingController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("BookingController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	outcome := ctrl.BookingWorkflow.Submit(r.Context())
	ctrl.Log.Info("BookingController.Submit finished",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingStateKey, string(outcome.State)),
	)

	message := outcome.Message
	if message == "" && outcome.State == models.BookingStateConfirmed {
		message = constvars.BookingSuccessFallbackMessage
	}
	utils.BuildOutcomeResponse(ctrl.Log, w, outcome.Err, message, responses.BookingOutcome{
		BookingOutcome: outcome,
		View:           ctrl.BookingWorkflow.View(),
	})
}
