package search

import (
	"net/http"
	"strings"
	"vitalis-service/internal/app/contracts"
	"vitalis-service/internal/pkg/constvars"
	"vitalis-service/internal/pkg/exceptions"
	"vitalis-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type SearchController struct {
	Log           *zap.Logger
	SearchUsecase contracts.SearchUsecase
}

func NewSearchController(logger *zap.Logger, searchUsecase contracts.SearchUsecase) *SearchController {
	return &SearchController{
		Log:           logger,
		SearchUsecase: searchUsecase,
	}
}

func (ctrl *SearchController) Search(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrSearchQueryMissing(nil))
		return
	}

	response, err := ctrl.SearchUsecase.Search(r.Context(), session, query)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, http.StatusOK, constvars.SearchSuccess, response)
}
