package mockserver

import (
	"net/http"
	"strconv"

	"github.com/jrsteele09/temco-admin/fallback"
	"github.com/jrsteele09/temco-admin/services"
)

// CustomersListHandler pages through the customers, honouring page, size and search
func (s *Server) CustomersListHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		params := services.DefaultListParams()
		if page, err := strconv.Atoi(q.Get("page")); err == nil {
			params.Page = page
		}
		if size, err := strconv.Atoi(q.Get("size")); err == nil {
			params.Size = size
		}
		params.Search = q.Get("search")

		page := fallback.Paginate(s.customers, params, func(c services.Customer, term string) bool {
			return fallback.ContainsFold(term, c.FullName, c.Email, c.NIC, c.StudentID, c.MobileNo)
		})
		writeJSON(w, http.StatusOK, page)
	}
}

func (s *Server) CustomerHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
		if err != nil {
			writeMessage(w, http.StatusNotFound, "Not found")
			return
		}

		for _, c := range s.customers {
			if c.ID == id {
				writeJSON(w, http.StatusOK, c)
				return
			}
		}
		writeMessage(w, http.StatusNotFound, "Customer not found")
	}
}

func (s *Server) DashboardSummaryHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.summary)
	}
}
