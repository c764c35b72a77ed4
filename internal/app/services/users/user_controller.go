package users

import (
	"net/http"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type UserController struct {
	Log               *zap.Logger
	UserUsecase       contracts.UserUsecase
	MaxUploadSizeInMB int
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, maxUploadSizeInMB int) *UserController {
	return &UserController{
		Log:               logger,
		UserUsecase:       userUsecase,
		MaxUploadSizeInMB: maxUploadSizeInMB,
	}
}

func (ctrl *UserController) GetUserProfile(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	response, err := ctrl.UserUsecase.GetUserProfile(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.ProfileGetSuccess, response)
}

func (ctrl *UserController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	maxBytes := int64(ctrl.MaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	err := r.ParseMultipartForm(maxBytes)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	response, err := ctrl.UserUsecase.UploadAvatar(
		r.Context(),
		session,
		header.Filename,
		file,
		header.Size,
		header.Header.Get(constvars.HeaderContentType),
	)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.AvatarUploadSuccess, response)
}
