package web

import (
	"context"
	"embed"
	"fmt"
	"html/template"

	"adamdesk/internal/models"
	"adamdesk/internal/repositories"
	"adamdesk/internal/storage"

	"go.uber.org/zap"
)

//go:embed templates/*.html
var templatesFS embed.FS

// PageContext is the view model shared by every dashboard page. Either the
// live demo-organization data or, when the store is unreachable, the fixed
// placeholder set with RuntimeWarning set.
type PageContext struct {
	AppName        string
	ActivePage     string
	RuntimeWarning string
	Org            *models.Organization
	Members        []*models.Member
	Classes        []*models.ClassSession
	Leads          []*models.Lead
	Invoices       []*models.Invoice
	MonthlyRevenue float64
}

// Degraded reports whether this context was built from placeholder data.
func (p *PageContext) Degraded() bool {
	return p.RuntimeWarning != ""
}

// Renderer builds page view models from the demo organization's data.
type Renderer struct {
	orgRepo     repositories.OrganizationRepository
	memberRepo  repositories.MemberRepository
	classRepo   repositories.ClassSessionRepository
	leadRepo    repositories.LeadRepository
	invoiceRepo repositories.InvoiceRepository
	log         *zap.Logger

	templates map[string]*template.Template
}

func NewRenderer(
	orgRepo repositories.OrganizationRepository,
	memberRepo repositories.MemberRepository,
	classRepo repositories.ClassSessionRepository,
	leadRepo repositories.LeadRepository,
	invoiceRepo repositories.InvoiceRepository,
	log *zap.Logger,
) (*Renderer, error) {
	templates := make(map[string]*template.Template)
	for _, name := range []string{"index", "members", "classes", "leads", "billing", "reports"} {
		tpl, err := template.New("layout.html").ParseFS(templatesFS, "templates/layout.html", "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", name, err)
		}
		templates[name] = tpl
	}

	return &Renderer{
		orgRepo:     orgRepo,
		memberRepo:  memberRepo,
		classRepo:   classRepo,
		leadRepo:    leadRepo,
		invoiceRepo: invoiceRepo,
		log:         log,
		templates:   templates,
	}, nil
}

// PageContext loads the live view model, or the placeholder one when any
// storage call fails. Pages always render; degraded mode carries a warning
// banner instead of an error page.
func (r *Renderer) PageContext(ctx context.Context, activePage string) *PageContext {
	pc, err := r.load(ctx, activePage)
	if err != nil {
		r.log.Warn("store unreachable, rendering placeholder data",
			zap.String("page", activePage), zap.Error(err))
		return fallbackContext(activePage)
	}
	return pc
}

func (r *Renderer) load(ctx context.Context, activePage string) (*PageContext, error) {
	pc := &PageContext{
		AppName:    "AdamDesk",
		ActivePage: activePage,
	}

	org, err := r.orgRepo.GetByName(ctx, storage.DemoOrganizationName)
	if err != nil {
		if repositories.IsNotFound(err) {
			// No demo organization means empty collections, not an error.
			return pc, nil
		}
		return nil, err
	}
	pc.Org = org

	if pc.Members, err = r.memberRepo.ListByOrganization(ctx, org.ID); err != nil {
		return nil, err
	}
	if pc.Classes, err = r.classRepo.ListByOrganization(ctx, org.ID); err != nil {
		return nil, err
	}
	if pc.Leads, err = r.leadRepo.ListByOrganization(ctx, org.ID); err != nil {
		return nil, err
	}
	if pc.Invoices, err = r.invoiceRepo.ListByOrganization(ctx, org.ID); err != nil {
		return nil, err
	}

	// Every invoice counts here regardless of status or date; the API's
	// mrr_30d is the stricter figure and the two are intentionally distinct.
	for _, invoice := range pc.Invoices {
		pc.MonthlyRevenue += invoice.Amount
	}

	return pc, nil
}
