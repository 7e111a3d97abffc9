package reminders_tools

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/scottCheezem/reminders-cli/internal/reminders"
	"github.com/scottCheezem/reminders-cli/internal/server"
)

// parseListNames splits a comma-separated list argument into trimmed,
// non-empty names.
func parseListNames(arg string) []string {
	var names []string
	for _, name := range strings.Split(arg, ",") {
		if name = strings.TrimSpace(name); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// runFacade runs fn against a facade writing into a buffer and returns the
// captured output.
func runFacade(st reminders.Store, fn func(f *reminders.Facade) error) (string, error) {
	var buf bytes.Buffer
	f := reminders.New(st, &buf)
	if err := fn(f); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// observe records a tool invocation in the Prometheus counters.
func observe(tool string, err error) {
	status := server.StatusFor(err)
	server.ToolInvocations.WithLabelValues(tool, status).Inc()
}

// RegisterReminderTools registers all reminders tools with the MCP server.
// Tool handlers call the same facade as the CLI commands; errors become
// MCP tool error results, never process exits.
func RegisterReminderTools(s *mcpserver.MCPServer, st reminders.Store) error {
	registerShowListsTool(s, st)
	registerShowTool(s, st)
	registerCompleteTool(s, st)
	registerDeleteTool(s, st)
	registerAddTool(s, st)
	return nil
}

func registerShowListsTool(s *mcpserver.MCPServer, st reminders.Store) {
	tool := mcp.NewTool("reminders_show_lists",
		mcp.WithDescription("List the titles of all writable reminder lists"),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		server.StoreQueries.WithLabelValues("lists").Inc()

		out, err := runFacade(st, func(f *reminders.Facade) error {
			return f.ShowLists(ctx)
		})
		observe("reminders_show_lists", err)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to show lists: %v", err)), nil
		}
		if out == "" {
			return mcp.NewToolResultText("No reminder lists."), nil
		}
		return mcp.NewToolResultText(out), nil
	})
}

func registerShowTool(s *mcpserver.MCPServer, st reminders.Store) {
	tool := mcp.NewTool("reminders_show",
		mcp.WithDescription("Show non-completed reminders on one or more lists"),
		mcp.WithString("lists",
			mcp.Required(),
			mcp.Description("Comma-separated list names (case-insensitive)"),
		),
		mcp.WithBoolean("json",
			mcp.Description("Render the reminders as a JSON array instead of plain text"),
		),
		mcp.WithBoolean("due_date_only",
			mcp.Description("Only include reminders that have a due date"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		names := parseListNames(request.GetString("lists", ""))
		if len(names) == 0 {
			return mcp.NewToolResultError("lists is required"), nil
		}

		format := reminders.FormatPlainText
		if request.GetBool("json", false) {
			format = reminders.FormatJSON
		}
		dueDateOnly := request.GetBool("due_date_only", false)

		server.StoreQueries.WithLabelValues("fetch_items").Inc()
		out, err := runFacade(st, func(f *reminders.Facade) error {
			return f.ShowListItems(ctx, names, format, dueDateOnly)
		})
		observe("reminders_show", err)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to show reminders: %v", err)), nil
		}
		if out == "" {
			return mcp.NewToolResultText("No reminders found."), nil
		}
		return mcp.NewToolResultText(out), nil
	})
}

func registerCompleteTool(s *mcpserver.MCPServer, st reminders.Store) {
	tool := mcp.NewTool("reminders_complete",
		mcp.WithDescription("Mark the reminder at the given index on a list as completed"),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("List name (case-insensitive)"),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("0-based index within the list's non-completed reminders"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list := request.GetString("list", "")
		index := request.GetFloat("index", -1)
		if list == "" || index < 0 {
			return mcp.NewToolResultError("list and a non-negative index are required"), nil
		}

		server.StoreQueries.WithLabelValues("save").Inc()
		out, err := runFacade(st, func(f *reminders.Facade) error {
			return f.Complete(ctx, int(index), list)
		})
		observe("reminders_complete", err)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to complete reminder: %v", err)), nil
		}
		return mcp.NewToolResultText(out), nil
	})
}

func registerDeleteTool(s *mcpserver.MCPServer, st reminders.Store) {
	tool := mcp.NewTool("reminders_delete",
		mcp.WithDescription("Delete the reminder at the given index on a list"),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("List name (case-insensitive)"),
		),
		mcp.WithNumber("index",
			mcp.Required(),
			mcp.Description("0-based index within the list's non-completed reminders"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list := request.GetString("list", "")
		index := request.GetFloat("index", -1)
		if list == "" || index < 0 {
			return mcp.NewToolResultError("list and a non-negative index are required"), nil
		}

		server.StoreQueries.WithLabelValues("remove").Inc()
		out, err := runFacade(st, func(f *reminders.Facade) error {
			return f.Delete(ctx, int(index), list)
		})
		observe("reminders_delete", err)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to delete reminder: %v", err)), nil
		}
		return mcp.NewToolResultText(out), nil
	})
}

func registerAddTool(s *mcpserver.MCPServer, st reminders.Store) {
	tool := mcp.NewTool("reminders_add",
		mcp.WithDescription("Add a new reminder to a list, with an optional due date"),
		mcp.WithString("list",
			mcp.Required(),
			mcp.Description("List name (case-insensitive)"),
		),
		mcp.WithString("title",
			mcp.Required(),
			mcp.Description("Reminder title"),
		),
		mcp.WithString("due_date",
			mcp.Description("Optional due date: RFC 3339, '2006-01-02 15:04', '2006-01-02' or natural language like 'tomorrow at 9am'"),
		),
	)

	s.AddTool(tool, func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		list := request.GetString("list", "")
		title := request.GetString("title", "")
		if list == "" || title == "" {
			return mcp.NewToolResultError("list and title are required"), nil
		}

		var due *time.Time
		if arg := request.GetString("due_date", ""); arg != "" {
			t, err := reminders.ParseDueDate(arg, time.Now())
			if err != nil {
				return mcp.NewToolResultError(err.Error()), nil
			}
			due = &t
		}

		server.StoreQueries.WithLabelValues("save").Inc()
		out, err := runFacade(st, func(f *reminders.Facade) error {
			return f.AddReminder(ctx, title, list, due)
		})
		observe("reminders_add", err)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("Failed to add reminder: %v", err)), nil
		}
		return mcp.NewToolResultText(out), nil
	})
}
