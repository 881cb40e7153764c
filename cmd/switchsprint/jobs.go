package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"switchsprint/internal/bootstrap"
	jobsearchdto "switchsprint/internal/modules/jobsearch/dto"
)

// changed returns a pointer to v only when the flag was set on the command line.
func changed[T any](cmd *cobra.Command, name string, v *T) *T {
	if cmd.Flags().Changed(name) {
		return v
	}
	return nil
}

func newApplicationCmd(flags *globalFlags) *cobra.Command {
	apps := &cobra.Command{Use: "app", Short: "Job applications"}

	apps.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List applications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.JobSearchCLI.Applications(ctx)
				if err != nil {
					return err
				}
				for _, a := range rows {
					printApplication(cmd.OutOrStdout(), a)
				}
				return nil
			})
		},
	})

	var in jobsearchdto.ApplicationInput
	add := &cobra.Command{
		Use:   "add <company> <role>",
		Short: "Record a new application",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Company, in.RoleTitle = args[0], args[1]
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				a, err := app.JobSearchCLI.AddApplication(ctx, in)
				if err != nil {
					return err
				}
				printApplication(cmd.OutOrStdout(), a)
				return nil
			})
		},
	}
	add.Flags().StringVar(&in.Location, "location", "", "job location")
	add.Flags().StringVar(&in.JobLink, "link", "", "posting URL")
	add.Flags().StringVar(&in.Source, "source", "", "where the posting was found")
	add.Flags().StringVar(&in.Status, "status", "", "initial status")
	add.Flags().StringVar(&in.DateApplied, "applied", "", "date applied (YYYY-MM-DD), defaults to today")
	add.Flags().StringVar(&in.Notes, "notes", "", "notes")
	add.Flags().StringVar(&in.RecruiterName, "recruiter", "", "recruiter name")
	add.Flags().StringVar(&in.RecruiterContact, "recruiter-contact", "", "recruiter email or profile")
	add.Flags().StringVar(&in.SalaryExpected, "salary", "", "expected salary")
	apps.AddCommand(add)

	var p struct {
		company, role, location, link, source, status, notes  string
		followUp, followUpStatus, recruiter, recruiterContact string
		salaryExpected, salaryOffered                         string
	}
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit an application",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := jobsearchdto.ApplicationPatchInput{
				ID:               args[0],
				Company:          changed(cmd, "company", &p.company),
				RoleTitle:        changed(cmd, "role", &p.role),
				Location:         changed(cmd, "location", &p.location),
				JobLink:          changed(cmd, "link", &p.link),
				Source:           changed(cmd, "source", &p.source),
				Status:           changed(cmd, "status", &p.status),
				Notes:            changed(cmd, "notes", &p.notes),
				NextFollowUpDate: changed(cmd, "follow-up", &p.followUp),
				FollowUpStatus:   changed(cmd, "follow-up-status", &p.followUpStatus),
				RecruiterName:    changed(cmd, "recruiter", &p.recruiter),
				RecruiterContact: changed(cmd, "recruiter-contact", &p.recruiterContact),
				SalaryExpected:   changed(cmd, "salary", &p.salaryExpected),
				SalaryOffered:    changed(cmd, "offer", &p.salaryOffered),
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				a, err := app.JobSearchCLI.UpdateApplication(ctx, patch)
				if err != nil {
					return err
				}
				printApplication(cmd.OutOrStdout(), a)
				return nil
			})
		},
	}
	update.Flags().StringVar(&p.company, "company", "", "company")
	update.Flags().StringVar(&p.role, "role", "", "role title")
	update.Flags().StringVar(&p.location, "location", "", "job location")
	update.Flags().StringVar(&p.link, "link", "", "posting URL")
	update.Flags().StringVar(&p.source, "source", "", "where the posting was found")
	update.Flags().StringVar(&p.status, "status", "", "status")
	update.Flags().StringVar(&p.notes, "notes", "", "notes")
	update.Flags().StringVar(&p.followUp, "follow-up", "", "next follow-up date (YYYY-MM-DD)")
	update.Flags().StringVar(&p.followUpStatus, "follow-up-status", "", "follow-up status")
	update.Flags().StringVar(&p.recruiter, "recruiter", "", "recruiter name")
	update.Flags().StringVar(&p.recruiterContact, "recruiter-contact", "", "recruiter email or profile")
	update.Flags().StringVar(&p.salaryExpected, "salary", "", "expected salary")
	update.Flags().StringVar(&p.salaryOffered, "offer", "", "offered salary")
	apps.AddCommand(update)

	apps.AddCommand(&cobra.Command{
		Use:   "move <id> <status>",
		Short: "Move an application to another status",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				a, err := app.JobSearchCLI.MoveApplication(ctx, args[0], args[1])
				if err != nil {
					return err
				}
				printApplication(cmd.OutOrStdout(), a)
				return nil
			})
		},
	})

	apps.AddCommand(deleteCmd(flags, "delete <id>", "Delete an application", func(ctx context.Context, app *bootstrap.App, id string) error {
		return app.JobSearchCLI.DeleteApplication(ctx, id)
	}))

	apps.AddCommand(&cobra.Command{
		Use:   "board",
		Short: "Show applications grouped by board column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				columns, err := app.JobSearchCLI.Board(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, col := range columns {
					_, _ = fmt.Fprintf(out, "%s (%d)\n", col.Name, len(col.Applications))
					for _, a := range col.Applications {
						_, _ = fmt.Fprintf(out, "  %s  %s, %s\n", a.ID, a.Company, a.RoleTitle)
					}
				}
				return nil
			})
		},
	})

	apps.AddCommand(&cobra.Command{
		Use:   "followups",
		Short: "List applications with a follow-up due",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.JobSearchCLI.FollowUps(ctx)
				if err != nil {
					return err
				}
				for _, a := range rows {
					printApplication(cmd.OutOrStdout(), a)
				}
				return nil
			})
		},
	})

	apps.AddCommand(&cobra.Command{
		Use:   "followed-up <id>",
		Short: "Record that a follow-up was sent",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				a, err := app.JobSearchCLI.MarkFollowedUp(ctx, args[0])
				if err != nil {
					return err
				}
				printApplication(cmd.OutOrStdout(), a)
				return nil
			})
		},
	})

	return apps
}

func newContactCmd(flags *globalFlags) *cobra.Command {
	contacts := &cobra.Command{Use: "contact", Short: "Networking contacts"}

	contacts.AddCommand(&cobra.Command{
		Use:   "list [query]",
		Short: "List contacts, optionally filtered",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := ""
			if len(args) == 1 {
				query = args[0]
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.JobSearchCLI.Contacts(ctx, query)
				if err != nil {
					return err
				}
				for _, c := range rows {
					printContact(cmd.OutOrStdout(), c)
				}
				return nil
			})
		},
	})

	var in jobsearchdto.ContactInput
	add := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name = args[0]
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				c, err := app.JobSearchCLI.AddContact(ctx, in)
				if err != nil {
					return err
				}
				printContact(cmd.OutOrStdout(), c)
				return nil
			})
		},
	}
	add.Flags().StringVar(&in.Role, "role", "", "role")
	add.Flags().StringVar(&in.Company, "company", "", "company")
	add.Flags().StringVar(&in.Link, "link", "", "profile URL")
	add.Flags().StringVar(&in.Email, "email", "", "email")
	add.Flags().StringVar(&in.Status, "status", "", "status")
	add.Flags().StringVar(&in.Notes, "notes", "", "notes")
	contacts.AddCommand(add)

	var p struct{ name, role, company, link, email, status, notes string }
	update := &cobra.Command{
		Use:   "update <id>",
		Short: "Edit a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := jobsearchdto.ContactPatchInput{
				ID:      args[0],
				Name:    changed(cmd, "name", &p.name),
				Role:    changed(cmd, "role", &p.role),
				Company: changed(cmd, "company", &p.company),
				Link:    changed(cmd, "link", &p.link),
				Email:   changed(cmd, "email", &p.email),
				Status:  changed(cmd, "status", &p.status),
				Notes:   changed(cmd, "notes", &p.notes),
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				c, err := app.JobSearchCLI.UpdateContact(ctx, patch)
				if err != nil {
					return err
				}
				printContact(cmd.OutOrStdout(), c)
				return nil
			})
		},
	}
	update.Flags().StringVar(&p.name, "name", "", "name")
	update.Flags().StringVar(&p.role, "role", "", "role")
	update.Flags().StringVar(&p.company, "company", "", "company")
	update.Flags().StringVar(&p.link, "link", "", "profile URL")
	update.Flags().StringVar(&p.email, "email", "", "email")
	update.Flags().StringVar(&p.status, "status", "", "status")
	update.Flags().StringVar(&p.notes, "notes", "", "notes")
	contacts.AddCommand(update)

	contacts.AddCommand(deleteCmd(flags, "delete <id>", "Delete a contact", func(ctx context.Context, app *bootstrap.App, id string) error {
		return app.JobSearchCLI.DeleteContact(ctx, id)
	}))

	var o jobsearchdto.OutreachInput
	outreach := &cobra.Command{
		Use:   "outreach <name> <company>",
		Short: "Draft an outreach message",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			o.Name, o.Company = args[0], args[1]
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				text, err := app.JobSearchCLI.Outreach(ctx, o)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), text)
				return nil
			})
		},
	}
	outreach.Flags().StringVar(&o.Topic, "topic", "", "topic to mention")
	outreach.Flags().StringVar(&o.Role, "role", "", "role to mention")
	contacts.AddCommand(outreach)

	return contacts
}

func newResumeCmd(flags *globalFlags) *cobra.Command {
	resumes := &cobra.Command{Use: "resume", Short: "Resume versions"}

	resumes.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List resumes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				rows, err := app.JobSearchCLI.Resumes(ctx)
				if err != nil {
					return err
				}
				for _, r := range rows {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-24s %-10s %s  %s\n", r.ID, r.Name, orDash(r.Type), r.LastUpdated, r.FileURL)
				}
				return nil
			})
		},
	})

	var in jobsearchdto.ResumeInput
	add := &cobra.Command{
		Use:   "add <name> <file-or-url>",
		Short: "Register a resume version",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in.Name, in.FileURL = args[0], args[1]
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				r, err := app.JobSearchCLI.AddResume(ctx, in)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", r.Name, r.ID)
				return nil
			})
		},
	}
	add.Flags().StringVar(&in.Type, "type", "", "resume type, e.g. data-engineering")
	add.Flags().StringVar(&in.Notes, "notes", "", "notes")
	resumes.AddCommand(add)

	resumes.AddCommand(deleteCmd(flags, "delete <id>", "Delete a resume", func(ctx context.Context, app *bootstrap.App, id string) error {
		return app.JobSearchCLI.DeleteResume(ctx, id)
	}))

	resumes.AddCommand(&cobra.Command{
		Use:   "inspect <id>",
		Short: "Read page and word counts from a local PDF resume",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				info, err := app.JobSearchCLI.InspectResume(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n  pages: %d\n  words: %d\n  first line: %s\n",
					info.Path, info.Pages, info.Words, info.FirstLine)
				return nil
			})
		},
	})

	return resumes
}

func newResourceCmd(flags *globalFlags) *cobra.Command {
	resources := &cobra.Command{Use: "resource", Short: "Learning resource checklist"}

	resources.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List categories and links",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				cats, err := app.JobSearchCLI.Resources(ctx)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				for _, c := range cats {
					_, _ = fmt.Fprintf(out, "%s  %s\n", c.ID, c.Title)
					for _, l := range c.Links {
						mark := "[ ]"
						if l.Checked {
							mark = "[x]"
						}
						_, _ = fmt.Fprintf(out, "  %s %s  %s  %s\n", mark, l.ID, l.Title, l.URL)
					}
				}
				return nil
			})
		},
	})

	resources.AddCommand(&cobra.Command{
		Use:   "add-category <title>",
		Short: "Add a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				c, err := app.JobSearchCLI.AddCategory(ctx, args[0])
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", c.Title, c.ID)
				return nil
			})
		},
	})

	resources.AddCommand(deleteCmd(flags, "remove-category <id>", "Remove a category and its links", func(ctx context.Context, app *bootstrap.App, id string) error {
		return app.JobSearchCLI.RemoveCategory(ctx, id)
	}))

	resources.AddCommand(&cobra.Command{
		Use:   "add-link <category-id> <title> <url>",
		Short: "Add a link to a category",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				l, err := app.JobSearchCLI.AddLink(ctx, jobsearchdto.LinkInput{CategoryID: args[0], Title: args[1], URL: args[2]})
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", l.Title, l.ID)
				return nil
			})
		},
	})

	var uncheck bool
	check := &cobra.Command{
		Use:   "check <category-id> <link-id>",
		Short: "Tick a link, or untick it with --off",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				l, err := app.JobSearchCLI.CheckLink(ctx, args[0], args[1], !uncheck)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s checked=%t\n", l.Title, l.Checked)
				return nil
			})
		},
	}
	check.Flags().BoolVar(&uncheck, "off", false, "untick the link")
	resources.AddCommand(check)

	var title, rawURL string
	updateLink := &cobra.Command{
		Use:   "update-link <category-id> <link-id>",
		Short: "Edit a link's title or URL",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			patch := jobsearchdto.LinkPatchInput{
				CategoryID: args[0],
				LinkID:     args[1],
				Title:      changed(cmd, "title", &title),
				URL:        changed(cmd, "url", &rawURL),
			}
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				l, err := app.JobSearchCLI.UpdateLink(ctx, patch)
				if err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", l.Title, l.URL)
				return nil
			})
		},
	}
	updateLink.Flags().StringVar(&title, "title", "", "link title")
	updateLink.Flags().StringVar(&rawURL, "url", "", "link URL")
	resources.AddCommand(updateLink)

	resources.AddCommand(&cobra.Command{
		Use:   "remove-link <category-id> <link-id>",
		Short: "Remove a link",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := app.JobSearchCLI.RemoveLink(ctx, args[0], args[1]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[1])
				return nil
			})
		},
	})

	return resources
}

func deleteCmd(flags *globalFlags, use, short string, fn func(ctx context.Context, app *bootstrap.App, id string) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), flags, func(ctx context.Context, app *bootstrap.App) error {
				if err := fn(ctx, app, args[0]); err != nil {
					return err
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
				return nil
			})
		},
	}
}

func printApplication(w io.Writer, a jobsearchdto.ApplicationOutput) {
	_, _ = fmt.Fprintf(w, "%s  %-20s %-28s %-12s applied %s", a.ID, a.Company, a.RoleTitle, a.Status, orDash(a.DateApplied))
	if a.NextFollowUpDate != "" {
		_, _ = fmt.Fprintf(w, "  follow-up %s (%s)", a.NextFollowUpDate, orDash(a.FollowUpStatus))
	}
	_, _ = fmt.Fprintln(w)
}

func printContact(w io.Writer, c jobsearchdto.ContactOutput) {
	_, _ = fmt.Fprintf(w, "%s  %-20s %-20s %-16s %s\n", c.ID, c.Name, orDash(c.Company), orDash(c.Status), orDash(c.LastContactDate))
}
