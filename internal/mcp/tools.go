package mcp

import (
	"context"
	"fmt"

	"github.com/kane/portfolio-api/internal/availability"
	"github.com/kane/portfolio-api/internal/chat"
	"github.com/kane/portfolio-api/internal/clock"
	"github.com/kane/portfolio-api/internal/contact"
	"github.com/kane/portfolio-api/internal/content"
)

// Dependencies bundles the local collaborators tools execute against.
type Dependencies interface {
	About() content.About
	Pillars() []content.Pillar
	WorkItems(limit int) []content.WorkItem
	WorkItem(slug string) (content.WorkItem, bool)
	WorkContent(slug string) (content.WorkContent, error)
	Experience() []content.ExperienceItem
	Skills() []content.SkillGroup
	Certifications() content.Certifications
	FilterAvailability(rangeExpr string) availability.Result
	CurrentTime() clock.Snapshot
	SubmitContact(ctx context.Context, msg contact.Message) string
	AnswerQuestion(question, audience string) chat.Response
}

// Tool is one entry in the dispatch table. Validate checks required
// arguments; Execute runs against local collaborators. Both report domain
// errors as {code, message} objects.
type Tool struct {
	Validate func(args map[string]any) *ToolError
	Execute  func(ctx context.Context, args map[string]any) (any, *ToolError)
}

// noValidation is used by tools without required arguments.
func noValidation(map[string]any) *ToolError { return nil }

// requireString builds a validator for a single required string argument.
func requireString(key, message string) func(map[string]any) *ToolError {
	return func(args map[string]any) *ToolError {
		if s, ok := args[key].(string); !ok || s == "" {
			return &ToolError{Code: CodeBadRequest, Message: message}
		}
		return nil
	}
}

// stringArg extracts an optional string argument.
func stringArg(args map[string]any, key string) string {
	s, _ := args[key].(string)
	return s
}

// intArg extracts an optional numeric argument; JSON numbers decode as float64.
func intArg(args map[string]any, key string) int {
	if f, ok := args[key].(float64); ok {
		return int(f)
	}
	return 0
}

// buildTools constructs the fixed dispatch table of named local tools.
func buildTools(deps Dependencies) map[string]Tool {
	return map[string]Tool{
		"get_about": {
			Validate: noValidation,
			Execute: func(context.Context, map[string]any) (any, *ToolError) {
				return map[string]any{"about": deps.About()}, nil
			},
		},
		"list_pillars": {
			Validate: noValidation,
			Execute: func(context.Context, map[string]any) (any, *ToolError) {
				return map[string]any{"items": deps.Pillars()}, nil
			},
		},
		"list_work": {
			Validate: noValidation,
			Execute: func(_ context.Context, args map[string]any) (any, *ToolError) {
				return map[string]any{"items": deps.WorkItems(intArg(args, "limit"))}, nil
			},
		},
		"get_work": {
			Validate: requireString("slug", "Missing 'slug'"),
			Execute: func(_ context.Context, args map[string]any) (any, *ToolError) {
				item, ok := deps.WorkItem(stringArg(args, "slug"))
				if !ok {
					return nil, &ToolError{Code: CodeNotFound, Message: "Work item not found"}
				}
				return map[string]any{"item": item}, nil
			},
		},
		"get_work_content": {
			Validate: requireString("slug", "Missing 'slug'"),
			Execute: func(_ context.Context, args map[string]any) (any, *ToolError) {
				wc, err := deps.WorkContent(stringArg(args, "slug"))
				if err != nil {
					return nil, &ToolError{Code: CodeNotFound, Message: "Content not found"}
				}
				return map[string]any{"content": wc}, nil
			},
		},
		"list_experience": {
			Validate: noValidation,
			Execute: func(context.Context, map[string]any) (any, *ToolError) {
				return map[string]any{"items": deps.Experience()}, nil
			},
		},
		"list_skills": {
			Validate: noValidation,
			Execute: func(context.Context, map[string]any) (any, *ToolError) {
				return map[string]any{"items": deps.Skills()}, nil
			},
		},
		"list_certifications": {
			Validate: noValidation,
			Execute: func(context.Context, map[string]any) (any, *ToolError) {
				return deps.Certifications(), nil
			},
		},
		"get_availability": {
			Validate: noValidation,
			Execute: func(_ context.Context, args map[string]any) (any, *ToolError) {
				return deps.FilterAvailability(stringArg(args, "range")), nil
			},
		},
		"get_current_time": {
			Validate: noValidation,
			Execute: func(context.Context, map[string]any) (any, *ToolError) {
				return map[string]any{"now": deps.CurrentTime()}, nil
			},
		},
		"send_contact_message": {
			Validate: func(args map[string]any) *ToolError {
				for _, key := range []string{"name", "email", "message"} {
					if s, ok := args[key].(string); !ok || s == "" {
						return &ToolError{Code: CodeBadRequest, Message: "name, email, message required"}
					}
				}
				return nil
			},
			Execute: func(ctx context.Context, args map[string]any) (any, *ToolError) {
				ticketID := deps.SubmitContact(ctx, contact.Message{
					Name:    stringArg(args, "name"),
					Email:   stringArg(args, "email"),
					Message: stringArg(args, "message"),
				})
				return map[string]any{"ticket_id": ticketID}, nil
			},
		},
		"ask_portfolio_bot": {
			Validate: requireString("question", "Missing 'question'"),
			Execute: func(_ context.Context, args map[string]any) (any, *ToolError) {
				audience := stringArg(args, "audience")
				if audience == "" {
					audience = chat.AudienceGeneral
				}
				return deps.AnswerQuestion(stringArg(args, "question"), audience), nil
			},
		},
	}
}

// callTool dispatches one tools/call invocation against the table.
func (a *Adapter) callTool(ctx context.Context, name string, args map[string]any) (any, *ToolError) {
	tool, ok := a.tools[name]
	if !ok {
		return nil, &ToolError{Code: CodeNotFound, Message: fmt.Sprintf("Tool '%s' not found", name)}
	}
	if terr := tool.Validate(args); terr != nil {
		return nil, terr
	}
	return tool.Execute(ctx, args)
}
