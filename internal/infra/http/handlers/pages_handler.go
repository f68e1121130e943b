package handlers

import (
	"html/template"
	"log"
	"net/http"

	"github.com/Jarmey101/agentpipeline/internal/entity"
)

const dashboardLeadLimit = 200

type PagesHandler struct {
	Templates *template.Template
	Leads     entity.LeadRepositoryInterface
}

func NewPagesHandler(templates *template.Template, leads entity.LeadRepositoryInterface) *PagesHandler {
	return &PagesHandler{Templates: templates, Leads: leads}
}

// Index serves the public lead-capture form.
func (h *PagesHandler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, "index.html", nil)
}

// Auth serves the admin login page.
func (h *PagesHandler) Auth(w http.ResponseWriter, r *http.Request) {
	h.render(w, "auth.html", nil)
}

// Dashboard lists the most recent leads. Admin gating happens in middleware.
func (h *PagesHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if h.Leads == nil {
		http.Error(w, "database not configured", http.StatusInternalServerError)
		return
	}

	leads, err := h.Leads.ListRecent(r.Context(), dashboardLeadLimit)
	if err != nil {
		log.Printf("DB: leads list failed: %v", err)
		http.Error(w, "failed to load leads", http.StatusInternalServerError)
		return
	}

	h.render(w, "dashboard.html", map[string]any{
		"Leads": leads,
		"Count": len(leads),
	})
}

func (h *PagesHandler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.Templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("TEMPLATE: render %s failed: %v", name, err)
	}
}
