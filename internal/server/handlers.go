package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/moznion/go-optional"
	"github.com/rxtech-lab/argo-journal/internal/types"
	"github.com/rxtech-lab/argo-journal/pkg/errors"
	"go.uber.org/zap"
)

type batchRequest struct {
	Entries []types.RawEntry `json:"entries"`
}

type batchResponse struct {
	Status  types.BatchStatus `json:"status"`
	Message string            `json:"message"`
	Results []types.RowResult `json:"results"`
}

type errorResponse struct {
	Code  errors.ErrorCode `json:"code"`
	Error string           `json:"error"`
}

type exportRequest struct {
	Path string `json:"path"`
}

func (s *Server) handleSubmitBatch(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeBadRequest, "invalid request body", err))
		return
	}

	result, err := s.coordinator.SubmitBatch(r.Context(), req.Entries)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, batchResponse{
		Status:  result.OverallStatus,
		Message: fmt.Sprintf("%d/%d rows committed", result.SucceededCount(), len(result.Results)),
		Results: result.Results,
	})
}

func (s *Server) handleListEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.coordinator.ListEntries(r.Context(), statisticsFilter(r))
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, entries)
}

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	groupBy, err := parseGroupBy(r.URL.Query().Get("group_by"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	groups, err := s.coordinator.GetStatistics(r.Context(), statisticsFilter(r), groupBy)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handlePopularAssets(w http.ResponseWriter, r *http.Request) {
	limit := s.config.PopularLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			s.writeError(w, errors.Newf(errors.ErrCodeInvalidLimit, "invalid limit %q", raw))
			return
		}
		limit = parsed
	}

	groups, err := s.coordinator.PopularAssets(r.Context(), limit)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, groups)
}

func (s *Server) handleListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := s.accounts.All(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, accounts)
}

func (s *Server) handleCreateAccount(w http.ResponseWriter, r *http.Request) {
	var account types.Account
	if err := json.NewDecoder(r.Body).Decode(&account); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeBadRequest, "invalid request body", err))
		return
	}

	if err := s.accounts.Create(r.Context(), account); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, account)
}

func (s *Server) handleAccountBalance(w http.ResponseWriter, r *http.Request) {
	accountID := mux.Vars(r)["id"]

	balance, err := s.coordinator.Balance(r.Context(), accountID)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, balance)
}

func (s *Server) handleListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := s.assets.All(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, assets)
}

func (s *Server) handleCreateAsset(w http.ResponseWriter, r *http.Request) {
	var asset types.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeBadRequest, "invalid request body", err))
		return
	}

	if err := s.assets.Create(r.Context(), asset); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, asset)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeBadRequest, "invalid request body", err))
		return
	}

	path := req.Path
	if path == "" {
		path = s.config.ExportPath.TakeOr("")
	}
	if path == "" {
		s.writeError(w, errors.New(errors.ErrCodeBadRequest, "export path is required"))
		return
	}

	if err := s.exporter.ExportParquet(path); err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]string{"path": path})
}

func statisticsFilter(r *http.Request) types.StatisticsFilter {
	filter := types.StatisticsFilter{}
	if accountID := r.URL.Query().Get("account_id"); accountID != "" {
		filter.AccountID = optional.Some(accountID)
	}
	if assetID := r.URL.Query().Get("asset_id"); assetID != "" {
		filter.AssetID = optional.Some(assetID)
	}

	return filter
}

func parseGroupBy(raw string) (types.GroupBy, error) {
	switch raw {
	case "":
		return types.GroupByNone, nil
	case string(types.GroupByAccount):
		return types.GroupByAccount, nil
	case string(types.GroupByAsset):
		return types.GroupByAsset, nil
	default:
		return types.GroupByNone, errors.Newf(errors.ErrCodeInvalidGrouping, "unknown grouping %q", raw)
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)

	s.writeJSON(w, httpStatus(code), errorResponse{
		Code:  code,
		Error: err.Error(),
	})
}

func httpStatus(code errors.ErrorCode) int {
	switch code {
	case errors.ErrCodeBadRequest,
		errors.ErrCodeEmptyBatch,
		errors.ErrCodeBatchTooLarge,
		errors.ErrCodeValidationFailed,
		errors.ErrCodeInvalidParameter,
		errors.ErrCodeInvalidGrouping,
		errors.ErrCodeInvalidLimit,
		errors.ErrCodeInvalidAccount,
		errors.ErrCodeInvalidAsset:
		return http.StatusBadRequest
	case errors.ErrCodeAccountNotFound,
		errors.ErrCodeAssetNotFound,
		errors.ErrCodeEntryNotFound:
		return http.StatusNotFound
	case errors.ErrCodeAccountAlreadyExists,
		errors.ErrCodeAssetAlreadyExists,
		errors.ErrCodeDuplicateEntry:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
