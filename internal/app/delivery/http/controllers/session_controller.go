package controllers

import (
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/dto/responses"
	"medibook-client/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

type SessionController struct {
	Log          *zap.Logger
	AuthUsecase  contracts.AuthUsecase
	SessionStore contracts.SessionStore
}

func NewSessionController(logger *zap.Logger, authUsecase contracts.AuthUsecase, sessionStore contracts.SessionStore) *SessionController {
	return &SessionController{
		Log:          logger,
		AuthUsecase:  authUsecase,
		SessionStore: sessionStore,
	}
}

func (ctrl *SessionController) Login(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SessionController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.Login
	if err := decodeJSON(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AuthUsecase.Login(r.Context(), &request); err != nil {
		ctrl.Log.Error("SessionController.Login error from AuthUsecase.Login",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SessionController.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, ctrl.session())
}

func (ctrl *SessionController) Register(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SessionController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.Register
	if err := decodeJSON(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.AuthUsecase.Register(r.Context(), &request); err != nil {
		ctrl.Log.Error("SessionController.Register error from AuthUsecase.Register",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("SessionController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, ctrl.session())
}

func (ctrl *SessionController) Logout(w http.ResponseWriter, r *http.Request) {
	ctrl.AuthUsecase.Logout(r.Context())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, ctrl.session())
}

// SetToken hands the agent a token obtained elsewhere. An empty token logs
// out.
func (ctrl *SessionController) SetToken(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("SessionController.SetToken called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var request requests.SetToken
	if err := decodeJSON(r, &request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.SessionStore.SetToken(r.Context(), request.Token)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SetTokenSuccessMessage, ctrl.session())
}

func (ctrl *SessionController) GetSession(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetSessionSuccessMessage, ctrl.session())
}

func (ctrl *SessionController) session() responses.Session {
	snapshot := ctrl.SessionStore.Snapshot()
	session := responses.Session{
		HasToken:      snapshot.Token != "",
		User:          snapshot.User,
		DoctorCount:   len(snapshot.Doctors),
		RosterVersion: snapshot.RosterVersion,
	}
	if claims, err := utils.ParseTokenClaims(snapshot.Token); err == nil {
		session.Subject = claims.Subject
		session.TokenExpiresAt = claims.ExpiresAt
	}
	return session
}
