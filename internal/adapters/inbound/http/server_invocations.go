package http

import (
	"fmt"
	"net/http"

	"github.com/oapi-codegen/runtime"
)

const defaultPageSize = 20

func (api AssistServer) ListInvocations(w http.ResponseWriter, r *http.Request) {
	page, pageSize := 1, defaultPageSize
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter page: %v", err)))
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "pagesize", r.URL.Query(), &pageSize); err != nil {
		respondError(w, badRequest(fmt.Sprintf("invalid format for parameter pagesize: %v", err)))
		return
	}

	records, hasMore, err := api.ListInvocationsUseCase.Query(r.Context(), page, pageSize)
	if err != nil {
		respondError(w, toError(err))
		return
	}

	resp := ListInvocationsResp{
		Items: []InvocationRecord{},
		Page:  page,
	}
	for _, rec := range records {
		resp.Items = append(resp.Items, toInvocationRecord(rec))
	}
	if hasMore {
		nextPage := page + 1
		resp.NextPage = &nextPage
	}
	if page > 1 {
		prevPage := page - 1
		resp.PreviousPage = &prevPage
	}

	respondJSON(w, http.StatusOK, resp)
}
