package in

import (
	"context"

	"switchsprint/internal/modules/jobsearch/dto"
)

type Usecase interface {
	ListApplications(ctx context.Context) ([]dto.ApplicationOutput, error)
	AddApplication(ctx context.Context, input dto.ApplicationInput) (dto.ApplicationOutput, error)
	UpdateApplication(ctx context.Context, input dto.ApplicationPatchInput) (dto.ApplicationOutput, error)
	DeleteApplication(ctx context.Context, id string) error
	Board(ctx context.Context) ([]dto.BoardColumnOutput, error)
	DueFollowUps(ctx context.Context) ([]dto.ApplicationOutput, error)

	ListContacts(ctx context.Context, query string) ([]dto.ContactOutput, error)
	AddContact(ctx context.Context, input dto.ContactInput) (dto.ContactOutput, error)
	UpdateContact(ctx context.Context, input dto.ContactPatchInput) (dto.ContactOutput, error)
	DeleteContact(ctx context.Context, id string) error
	OutreachEmail(ctx context.Context, input dto.OutreachInput) (string, error)

	ListResumes(ctx context.Context) ([]dto.ResumeOutput, error)
	AddResume(ctx context.Context, input dto.ResumeInput) (dto.ResumeOutput, error)
	DeleteResume(ctx context.Context, id string) error
	InspectResume(ctx context.Context, id string) (dto.ResumeInfoOutput, error)

	ListResources(ctx context.Context) ([]dto.CategoryOutput, error)
	AddCategory(ctx context.Context, title string) (dto.CategoryOutput, error)
	RemoveCategory(ctx context.Context, id string) error
	AddLink(ctx context.Context, input dto.LinkInput) (dto.LinkOutput, error)
	UpdateLink(ctx context.Context, input dto.LinkPatchInput) (dto.LinkOutput, error)
	RemoveLink(ctx context.Context, categoryID, linkID string) error
}
