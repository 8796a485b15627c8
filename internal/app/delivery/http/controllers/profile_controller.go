package controllers

import (
	"errors"
	"io"
	"medibook-client/internal/app/contracts"
	"medibook-client/internal/pkg/constvars"
	"medibook-client/internal/pkg/dto/requests"
	"medibook-client/internal/pkg/exceptions"
	"medibook-client/internal/pkg/utils"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ProfileController struct {
	Log            *zap.Logger
	ProfileUsecase contracts.ProfileUsecase
}

func NewProfileController(logger *zap.Logger, profileUsecase contracts.ProfileUsecase) *ProfileController {
	return &ProfileController{
		Log:            logger,
		ProfileUsecase: profileUsecase,
	}
}

func (ctrl *ProfileController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	profile, err := ctrl.ProfileUsecase.GetProfile(r.Context())
	if err != nil {
		ctrl.Log.Error("ProfileController.GetProfile error from ProfileUsecase.GetProfile",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

// UpdateProfile accepts either a multipart form, the only way to send an
// image, or a JSON body.
func (ctrl *ProfileController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProfileController.UpdateProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var (
		request *requests.UpdateProfile
		err     error
	)
	if strings.HasPrefix(r.Header.Get(constvars.HeaderContentType), constvars.MIMEMultipartForm) {
		request, err = parseProfileForm(r)
	} else {
		request = &requests.UpdateProfile{}
		err = decodeJSON(r, request)
	}
	if err != nil {
		ctrl.Log.Error("ProfileController.UpdateProfile error parsing request",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	if err := ctrl.ProfileUsecase.UpdateProfile(r.Context(), request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	profile, err := ctrl.ProfileUsecase.GetProfile(r.Context())
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileUpdatedFallbackMessage, profile)
}

func parseProfileForm(r *http.Request) (*requests.UpdateProfile, error) {
	if err := r.ParseMultipartForm(constvars.FormMaxMemoryInMegabytes << 20); err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}

	request := &requests.UpdateProfile{
		Name:   r.FormValue(constvars.MultipartFieldName),
		Phone:  r.FormValue(constvars.MultipartFieldPhone),
		DOB:    r.FormValue(constvars.MultipartFieldDob),
		Gender: r.FormValue(constvars.MultipartFieldGender),
	}
	if address := r.FormValue(constvars.MultipartFieldAddress); address != "" {
		if err := json.Unmarshal([]byte(address), &request.Address); err != nil {
			return nil, exceptions.ErrCannotParseJSON(err)
		}
	}

	file, header, err := r.FormFile(constvars.FormFieldImage)
	if errors.Is(err, http.ErrMissingFile) {
		return request, nil
	}
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, exceptions.ErrCannotParseMultipartForm(err)
	}
	contentType := header.Header.Get(constvars.HeaderContentType)
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}
	request.Image = &requests.ImageUpload{
		FileName:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}
	return request, nil
}
