package in

import (
	"context"

	jobsearchdto "switchsprint/internal/modules/jobsearch/dto"
	jobsearchin "switchsprint/internal/modules/jobsearch/port/in"
)

type CLIHandler struct {
	usecase jobsearchin.Usecase
}

func NewCLIHandler(usecase jobsearchin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Applications(ctx context.Context) ([]jobsearchdto.ApplicationOutput, error) {
	return h.usecase.ListApplications(ctx)
}

func (h CLIHandler) AddApplication(ctx context.Context, input jobsearchdto.ApplicationInput) (jobsearchdto.ApplicationOutput, error) {
	return h.usecase.AddApplication(ctx, input)
}

func (h CLIHandler) UpdateApplication(ctx context.Context, input jobsearchdto.ApplicationPatchInput) (jobsearchdto.ApplicationOutput, error) {
	return h.usecase.UpdateApplication(ctx, input)
}

// MoveApplication changes only the status.
func (h CLIHandler) MoveApplication(ctx context.Context, id, status string) (jobsearchdto.ApplicationOutput, error) {
	return h.usecase.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: id, Status: &status})
}

func (h CLIHandler) DeleteApplication(ctx context.Context, id string) error {
	return h.usecase.DeleteApplication(ctx, id)
}

func (h CLIHandler) Board(ctx context.Context) ([]jobsearchdto.BoardColumnOutput, error) {
	return h.usecase.Board(ctx)
}

func (h CLIHandler) FollowUps(ctx context.Context) ([]jobsearchdto.ApplicationOutput, error) {
	return h.usecase.DueFollowUps(ctx)
}

// MarkFollowedUp closes the pending follow-up of an application.
func (h CLIHandler) MarkFollowedUp(ctx context.Context, id string) (jobsearchdto.ApplicationOutput, error) {
	done := "Done"
	return h.usecase.UpdateApplication(ctx, jobsearchdto.ApplicationPatchInput{ID: id, FollowUpStatus: &done})
}

func (h CLIHandler) Contacts(ctx context.Context, query string) ([]jobsearchdto.ContactOutput, error) {
	return h.usecase.ListContacts(ctx, query)
}

func (h CLIHandler) AddContact(ctx context.Context, input jobsearchdto.ContactInput) (jobsearchdto.ContactOutput, error) {
	return h.usecase.AddContact(ctx, input)
}

func (h CLIHandler) UpdateContact(ctx context.Context, input jobsearchdto.ContactPatchInput) (jobsearchdto.ContactOutput, error) {
	return h.usecase.UpdateContact(ctx, input)
}

func (h CLIHandler) DeleteContact(ctx context.Context, id string) error {
	return h.usecase.DeleteContact(ctx, id)
}

func (h CLIHandler) Outreach(ctx context.Context, input jobsearchdto.OutreachInput) (string, error) {
	return h.usecase.OutreachEmail(ctx, input)
}

func (h CLIHandler) Resumes(ctx context.Context) ([]jobsearchdto.ResumeOutput, error) {
	return h.usecase.ListResumes(ctx)
}

func (h CLIHandler) AddResume(ctx context.Context, input jobsearchdto.ResumeInput) (jobsearchdto.ResumeOutput, error) {
	return h.usecase.AddResume(ctx, input)
}

func (h CLIHandler) DeleteResume(ctx context.Context, id string) error {
	return h.usecase.DeleteResume(ctx, id)
}

func (h CLIHandler) InspectResume(ctx context.Context, id string) (jobsearchdto.ResumeInfoOutput, error) {
	return h.usecase.InspectResume(ctx, id)
}

func (h CLIHandler) Resources(ctx context.Context) ([]jobsearchdto.CategoryOutput, error) {
	return h.usecase.ListResources(ctx)
}

func (h CLIHandler) AddCategory(ctx context.Context, title string) (jobsearchdto.CategoryOutput, error) {
	return h.usecase.AddCategory(ctx, title)
}

func (h CLIHandler) RemoveCategory(ctx context.Context, id string) error {
	return h.usecase.RemoveCategory(ctx, id)
}

func (h CLIHandler) AddLink(ctx context.Context, input jobsearchdto.LinkInput) (jobsearchdto.LinkOutput, error) {
	return h.usecase.AddLink(ctx, input)
}

func (h CLIHandler) UpdateLink(ctx context.Context, input jobsearchdto.LinkPatchInput) (jobsearchdto.LinkOutput, error) {
	return h.usecase.UpdateLink(ctx, input)
}

// CheckLink marks a link as done or not done.
func (h CLIHandler) CheckLink(ctx context.Context, categoryID, linkID string, checked bool) (jobsearchdto.LinkOutput, error) {
	return h.usecase.UpdateLink(ctx, jobsearchdto.LinkPatchInput{CategoryID: categoryID, LinkID: linkID, Checked: &checked})
}

func (h CLIHandler) RemoveLink(ctx context.Context, categoryID, linkID string) error {
	return h.usecase.RemoveLink(ctx, categoryID, linkID)
}
