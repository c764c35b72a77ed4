package dashboards

import (
	"net/http"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/app/models"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type DashboardController struct {
	Log               *zap.Logger
	DashboardUsecase  contracts.DashboardUsecase
	NavigationUsecase contracts.NavigationUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase, navigationUsecase contracts.NavigationUsecase) *DashboardController {
	return &DashboardController{
		Log:               logger,
		DashboardUsecase:  dashboardUsecase,
		NavigationUsecase: navigationUsecase,
	}
}

func (ctrl *DashboardController) GetDashboard(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	if err := matchPathRole(r, session.Role); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	response, err := ctrl.DashboardUsecase.GetDashboard(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.DashboardGetSuccess, response)
}

func (ctrl *DashboardController) GetSection(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	if err := matchPathRole(r, session.Role); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	sectionKey := chi.URLParam(r, constvars.URLParamSection)
	response, err := ctrl.DashboardUsecase.GetSection(r.Context(), session, sectionKey)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	message := constvars.SectionGetSuccess
	if !response.Available {
		message = constvars.SectionNotAvailableYet
	}
	utils.BuildSuccessResponse(w, http.StatusOK, message, response)
}

func (ctrl *DashboardController) GetNavigation(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	response, err := ctrl.NavigationUsecase.GetNavigation(r.Context(), session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.NavigationGetSuccess, response)
}

// matchPathRole rejects requests for another role's dashboard. The
// path role must be a member of the closed set and equal the session
// role.
func matchPathRole(r *http.Request, sessionRole models.Role) error {
	pathRole, err := models.ParseRole(chi.URLParam(r, constvars.URLParamRole))
	if err != nil {
		return exceptions.ErrInvalidRoleType(err)
	}
	if pathRole != sessionRole {
		return exceptions.ErrNotMatchRoleType(nil)
	}
	return nil
}
