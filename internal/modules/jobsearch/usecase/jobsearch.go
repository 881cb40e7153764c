package usecase

import (
	"context"
	"fmt"
	"strings"

	docdomain "switchsprint/internal/modules/document/domain"
	"switchsprint/internal/modules/jobsearch/domain"
	jobsearchdto "switchsprint/internal/modules/jobsearch/dto"
	jobsearchin "switchsprint/internal/modules/jobsearch/port/in"
	"switchsprint/internal/modules/jobsearch/service"
	apperrors "switchsprint/internal/platform/errors"
)

type Interactor struct {
	svc *service.JobSearchService
}

func NewInteractor(svc *service.JobSearchService) jobsearchin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListApplications(_ context.Context) ([]jobsearchdto.ApplicationOutput, error) {
	return toApplicationOutputs(i.svc.Applications()), nil
}

func (i *Interactor) AddApplication(ctx context.Context, input jobsearchdto.ApplicationInput) (jobsearchdto.ApplicationOutput, error) {
	app, err := i.svc.AddApplication(ctx, domain.NewApplication{
		Company:          input.Company,
		RoleTitle:        input.RoleTitle,
		Location:         input.Location,
		JobLink:          input.JobLink,
		Source:           input.Source,
		Status:           docdomain.ApplicationStatus(input.Status),
		DateApplied:      input.DateApplied,
		Notes:            input.Notes,
		RecruiterName:    input.RecruiterName,
		RecruiterContact: input.RecruiterContact,
		SalaryExpected:   input.SalaryExpected,
	})
	if err != nil {
		return jobsearchdto.ApplicationOutput{}, err
	}
	return toApplicationOutput(app), nil
}

func (i *Interactor) UpdateApplication(ctx context.Context, input jobsearchdto.ApplicationPatchInput) (jobsearchdto.ApplicationOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return jobsearchdto.ApplicationOutput{}, fmt.Errorf("%w: application id is required", apperrors.ErrInvalidInput)
	}
	patch := domain.ApplicationPatch{
		Company:          input.Company,
		RoleTitle:        input.RoleTitle,
		Location:         input.Location,
		JobLink:          input.JobLink,
		Source:           input.Source,
		Notes:            input.Notes,
		NextFollowUpDate: input.NextFollowUpDate,
		RecruiterName:    input.RecruiterName,
		RecruiterContact: input.RecruiterContact,
		SalaryExpected:   input.SalaryExpected,
		SalaryOffered:    input.SalaryOffered,
	}
	if input.Status != nil {
		status := docdomain.ApplicationStatus(*input.Status)
		patch.Status = &status
	}
	if input.FollowUpStatus != nil {
		followUp := docdomain.FollowUpStatus(*input.FollowUpStatus)
		patch.FollowUpStatus = &followUp
	}
	app, err := i.svc.UpdateApplication(ctx, input.ID, patch)
	if err != nil {
		return jobsearchdto.ApplicationOutput{}, err
	}
	return toApplicationOutput(app), nil
}

func (i *Interactor) DeleteApplication(ctx context.Context, id string) error {
	return i.svc.DeleteApplication(ctx, id)
}

func (i *Interactor) Board(_ context.Context) ([]jobsearchdto.BoardColumnOutput, error) {
	board := i.svc.Board()
	out := make([]jobsearchdto.BoardColumnOutput, 0, len(domain.Columns))
	for _, column := range domain.Columns {
		out = append(out, jobsearchdto.BoardColumnOutput{
			Name:         string(column),
			Applications: toApplicationOutputs(board[column]),
		})
	}
	return out, nil
}

func (i *Interactor) DueFollowUps(_ context.Context) ([]jobsearchdto.ApplicationOutput, error) {
	return toApplicationOutputs(i.svc.DueFollowUps()), nil
}

func (i *Interactor) ListContacts(_ context.Context, query string) ([]jobsearchdto.ContactOutput, error) {
	contacts := i.svc.Contacts(query)
	out := make([]jobsearchdto.ContactOutput, 0, len(contacts))
	for _, contact := range contacts {
		out = append(out, toContactOutput(contact))
	}
	return out, nil
}

func (i *Interactor) AddContact(ctx context.Context, input jobsearchdto.ContactInput) (jobsearchdto.ContactOutput, error) {
	contact, err := i.svc.AddContact(ctx, domain.NewContact{
		Name:    input.Name,
		Role:    input.Role,
		Company: input.Company,
		Link:    input.Link,
		Email:   input.Email,
		Status:  docdomain.ContactStatus(input.Status),
		Notes:   input.Notes,
	})
	if err != nil {
		return jobsearchdto.ContactOutput{}, err
	}
	return toContactOutput(contact), nil
}

func (i *Interactor) UpdateContact(ctx context.Context, input jobsearchdto.ContactPatchInput) (jobsearchdto.ContactOutput, error) {
	if strings.TrimSpace(input.ID) == "" {
		return jobsearchdto.ContactOutput{}, fmt.Errorf("%w: contact id is required", apperrors.ErrInvalidInput)
	}
	patch := domain.ContactPatch{
		Name:    input.Name,
		Role:    input.Role,
		Company: input.Company,
		Link:    input.Link,
		Email:   input.Email,
		Notes:   input.Notes,
	}
	if input.Status != nil {
		status := docdomain.ContactStatus(*input.Status)
		patch.Status = &status
	}
	contact, err := i.svc.UpdateContact(ctx, input.ID, patch)
	if err != nil {
		return jobsearchdto.ContactOutput{}, err
	}
	return toContactOutput(contact), nil
}

func (i *Interactor) DeleteContact(ctx context.Context, id string) error {
	return i.svc.DeleteContact(ctx, id)
}

func (i *Interactor) OutreachEmail(_ context.Context, input jobsearchdto.OutreachInput) (string, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Company) == "" {
		return "", fmt.Errorf("%w: name and company are required", apperrors.ErrInvalidInput)
	}
	return domain.OutreachEmail(input.Name, input.Company, input.Topic, input.Role), nil
}

func (i *Interactor) ListResumes(_ context.Context) ([]jobsearchdto.ResumeOutput, error) {
	resumes := i.svc.Resumes()
	out := make([]jobsearchdto.ResumeOutput, 0, len(resumes))
	for _, resume := range resumes {
		out = append(out, toResumeOutput(resume))
	}
	return out, nil
}

func (i *Interactor) AddResume(ctx context.Context, input jobsearchdto.ResumeInput) (jobsearchdto.ResumeOutput, error) {
	resume, err := i.svc.AddResume(ctx, domain.NewResume{
		Name:    input.Name,
		FileURL: input.FileURL,
		Type:    docdomain.ResumeType(input.Type),
		Notes:   input.Notes,
	})
	if err != nil {
		return jobsearchdto.ResumeOutput{}, err
	}
	return toResumeOutput(resume), nil
}

func (i *Interactor) DeleteResume(ctx context.Context, id string) error {
	return i.svc.DeleteResume(ctx, id)
}

func (i *Interactor) InspectResume(ctx context.Context, id string) (jobsearchdto.ResumeInfoOutput, error) {
	info, err := i.svc.InspectResume(ctx, id)
	if err != nil {
		return jobsearchdto.ResumeInfoOutput{}, err
	}
	return jobsearchdto.ResumeInfoOutput{Path: info.Path, Pages: info.Pages, Words: info.Words, FirstLine: info.FirstLine}, nil
}

func (i *Interactor) ListResources(_ context.Context) ([]jobsearchdto.CategoryOutput, error) {
	categories := i.svc.Resources()
	out := make([]jobsearchdto.CategoryOutput, 0, len(categories))
	for _, category := range categories {
		out = append(out, toCategoryOutput(category))
	}
	return out, nil
}

func (i *Interactor) AddCategory(ctx context.Context, title string) (jobsearchdto.CategoryOutput, error) {
	category, err := i.svc.AddCategory(ctx, title)
	if err != nil {
		return jobsearchdto.CategoryOutput{}, err
	}
	return toCategoryOutput(category), nil
}

func (i *Interactor) RemoveCategory(ctx context.Context, id string) error {
	return i.svc.RemoveCategory(ctx, id)
}

func (i *Interactor) AddLink(ctx context.Context, input jobsearchdto.LinkInput) (jobsearchdto.LinkOutput, error) {
	link, err := i.svc.AddLink(ctx, input.CategoryID, input.Title, input.URL)
	if err != nil {
		return jobsearchdto.LinkOutput{}, err
	}
	return toLinkOutput(link), nil
}

func (i *Interactor) UpdateLink(ctx context.Context, input jobsearchdto.LinkPatchInput) (jobsearchdto.LinkOutput, error) {
	link, err := i.svc.UpdateLink(ctx, input.CategoryID, input.LinkID, domain.LinkPatch{
		Title:   input.Title,
		URL:     input.URL,
		Checked: input.Checked,
	})
	if err != nil {
		return jobsearchdto.LinkOutput{}, err
	}
	return toLinkOutput(link), nil
}

func (i *Interactor) RemoveLink(ctx context.Context, categoryID, linkID string) error {
	return i.svc.RemoveLink(ctx, categoryID, linkID)
}

func toApplicationOutputs(apps []docdomain.JobApplication) []jobsearchdto.ApplicationOutput {
	out := make([]jobsearchdto.ApplicationOutput, 0, len(apps))
	for _, app := range apps {
		out = append(out, toApplicationOutput(app))
	}
	return out
}

func toApplicationOutput(app docdomain.JobApplication) jobsearchdto.ApplicationOutput {
	out := jobsearchdto.ApplicationOutput{
		ID:               app.ID,
		Company:          app.Company,
		RoleTitle:        app.RoleTitle,
		Location:         app.Location,
		JobLink:          app.JobLink,
		Source:           app.Source,
		Status:           string(app.Status),
		Column:           string(domain.ColumnOf(app)),
		DateApplied:      app.DateApplied,
		LastActionDate:   app.LastActionDate,
		FollowUpStatus:   string(app.FollowUpStatus),
		Notes:            app.Notes,
		RecruiterName:    app.RecruiterName,
		RecruiterContact: app.RecruiterContact,
		SalaryExpected:   app.SalaryExpected,
		SalaryOffered:    app.SalaryOffered,
	}
	if app.NextFollowUpDate != nil {
		out.NextFollowUpDate = *app.NextFollowUpDate
	}
	return out
}

func toContactOutput(contact docdomain.Contact) jobsearchdto.ContactOutput {
	out := jobsearchdto.ContactOutput{
		ID:      contact.ID,
		Name:    contact.Name,
		Role:    contact.Role,
		Company: contact.Company,
		Link:    contact.Link,
		Email:   contact.Email,
		Status:  string(contact.Status),
		Notes:   contact.Notes,
	}
	if contact.LastContactDate != nil {
		out.LastContactDate = *contact.LastContactDate
	}
	return out
}

func toResumeOutput(resume docdomain.ResumeVersion) jobsearchdto.ResumeOutput {
	return jobsearchdto.ResumeOutput{
		ID:          resume.ID,
		Name:        resume.Name,
		FileURL:     resume.FileURL,
		Type:        string(resume.Type),
		LastUpdated: resume.LastUpdated,
		Notes:       resume.Notes,
	}
}

func toLinkOutput(link docdomain.ResourceLink) jobsearchdto.LinkOutput {
	return jobsearchdto.LinkOutput{ID: link.ID, Title: link.Title, URL: link.URL, Checked: link.Checked}
}

func toCategoryOutput(category docdomain.ResourceCategory) jobsearchdto.CategoryOutput {
	out := jobsearchdto.CategoryOutput{ID: category.ID, Title: category.Title, Links: make([]jobsearchdto.LinkOutput, 0, len(category.Links))}
	for _, link := range category.Links {
		out.Links = append(out.Links, toLinkOutput(link))
	}
	return out
}
