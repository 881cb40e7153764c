package dto

type ApplicationInput struct {
	Company          string
	RoleTitle        string
	Location         string
	JobLink          string
	Source           string
	Status           string
	DateApplied      string
	Notes            string
	RecruiterName    string
	RecruiterContact string
	SalaryExpected   string
}

type ApplicationPatchInput struct {
	ID               string
	Company          *string
	RoleTitle        *string
	Location         *string
	JobLink          *string
	Source           *string
	Status           *string
	Notes            *string
	NextFollowUpDate *string
	FollowUpStatus   *string
	RecruiterName    *string
	RecruiterContact *string
	SalaryExpected   *string
	SalaryOffered    *string
}

type ApplicationOutput struct {
	ID               string
	Company          string
	RoleTitle        string
	Location         string
	JobLink          string
	Source           string
	Status           string
	Column           string
	DateApplied      string
	LastActionDate   string
	NextFollowUpDate string
	FollowUpStatus   string
	Notes            string
	RecruiterName    string
	RecruiterContact string
	SalaryExpected   string
	SalaryOffered    string
}

type BoardColumnOutput struct {
	Name         string
	Applications []ApplicationOutput
}

type ContactInput struct {
	Name    string
	Role    string
	Company string
	Link    string
	Email   string
	Status  string
	Notes   string
}

type ContactPatchInput struct {
	ID      string
	Name    *string
	Role    *string
	Company *string
	Link    *string
	Email   *string
	Status  *string
	Notes   *string
}

type ContactOutput struct {
	ID              string
	Name            string
	Role            string
	Company         string
	Link            string
	Email           string
	Status          string
	LastContactDate string
	Notes           string
}

type OutreachInput struct {
	Name    string
	Company string
	Topic   string
	Role    string
}

type ResumeInput struct {
	Name    string
	FileURL string
	Type    string
	Notes   string
}

type ResumeOutput struct {
	ID          string
	Name        string
	FileURL     string
	Type        string
	LastUpdated string
	Notes       string
}

type ResumeInfoOutput struct {
	Path      string
	Pages     int
	Words     int
	FirstLine string
}

type LinkOutput struct {
	ID      string
	Title   string
	URL     string
	Checked bool
}

type CategoryOutput struct {
	ID    string
	Title string
	Links []LinkOutput
}

type LinkInput struct {
	CategoryID string
	Title      string
	URL        string
}

type LinkPatchInput struct {
	CategoryID string
	LinkID     string
	Title      *string
	URL        *string
	Checked    *bool
}
