package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/maheshrc27/adspark/internal/dashboard"
	"github.com/maheshrc27/adspark/internal/models"
)

const shellHelp = `Commands:
  ls                      list posts in the current tab
  tab draft|published|all switch tab
  show <id>               print one post in full
  approve <id>            send a draft to the approve workflow
  delete <id>             delete a post
  new                     create a post
  refresh                 reload posts
  logout                  end the session and quit
  quit                    quit`

type logouter interface {
	Logout(ctx context.Context) error
}

type shell struct {
	d      *dashboard.Dashboard
	client logouter
	in     *bufio.Scanner
	out    io.Writer
}

func (s *shell) run(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	fmt.Fprintln(s.out, shellHelp)

	for {
		fmt.Fprintf(s.out, "adspark[%s]> ", s.d.Tab())
		if !s.in.Scan() {
			return s.in.Err()
		}

		fields := strings.Fields(s.in.Text())
		if len(fields) == 0 {
			continue
		}
		arg := ""
		if len(fields) > 1 {
			arg = fields[1]
		}

		switch fields[0] {
		case "ls":
			printPosts(s.out, s.d)
		case "tab":
			s.d.SetTab(dashboard.Tab(arg))
			printPosts(s.out, s.d)
		case "show":
			s.show(arg)
		case "approve":
			s.approve(ctx, arg)
		case "delete":
			s.delete(ctx, arg)
		case "new":
			s.create()
		case "refresh":
			if err := s.d.Refresh(ctx); err != nil {
				fmt.Fprintf(s.out, "Could not load posts: %v\n", err)
				continue
			}
			printPosts(s.out, s.d)
		case "logout":
			if err := s.client.Logout(ctx); err != nil {
				fmt.Fprintf(s.out, "Logout failed: %v\n", err)
			}
			return nil
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprintln(s.out, shellHelp)
		default:
			fmt.Fprintf(s.out, "unknown command %q, try help\n", fields[0])
		}
	}
}

func (s *shell) show(id string) {
	if !s.d.Select(id) {
		fmt.Fprintf(s.out, "no post %q\n", id)
		return
	}
	defer s.d.Deselect()

	p := s.d.Selected()
	fmt.Fprintf(s.out, "%s  [%s]\n%s\n\n%s\n", dashboard.CardTitle(p), dashboard.StatusLabel(p), dashboard.CardSubtitle(p), dashboard.Content(p))
	if img := models.StringValue(p.GeneratedImageURL); img != "" {
		fmt.Fprintf(s.out, "\nImage: %s\n", img)
	}
}

func (s *shell) approve(ctx context.Context, id string) {
	if !s.d.RequestApprove(id) {
		fmt.Fprintf(s.out, "no draft post %q\n", id)
		return
	}
	if !confirm(s.in, s.out, "Are you sure you want to approve this post?") {
		s.d.CancelConfirm()
		return
	}

	fmt.Fprintln(s.out, "Approving…")
	s.d.ConfirmApprove(ctx)
	s.closeResult(ctx)
}

func (s *shell) delete(ctx context.Context, id string) {
	if !s.d.RequestDelete(id) {
		fmt.Fprintf(s.out, "no post %q\n", id)
		return
	}
	if !confirm(s.in, s.out, "Are you sure you want to delete this post? This action cannot be undone.") {
		s.d.CancelConfirm()
		return
	}

	fmt.Fprintln(s.out, "Deleting…")
	s.d.ConfirmDelete(ctx)
	if s.d.Result() == nil {
		fmt.Fprintln(s.out, "Deleted.")
		return
	}
	s.closeResult(ctx)
	s.d.CancelConfirm()
}

func (s *shell) create() {
	form := dashboard.NewCreateForm()

	if strings.EqualFold(prompt(s.in, s.out, "Mode [ai/fix] (ai): "), string(dashboard.ModeFix)) {
		form.Mode = dashboard.ModeFix
		form.Title = prompt(s.in, s.out, "Title: ")
		form.Content = prompt(s.in, s.out, fmt.Sprintf("Text content (max %d characters): ", dashboard.MaxContentRunes))
	} else {
		form.Topic = prompt(s.in, s.out, fmt.Sprintf("Topic (max %d characters): ", dashboard.MaxTopicRunes))
	}

	if theme := prompt(s.in, s.out, fmt.Sprintf("Theme %v (%s): ", dashboard.Themes, dashboard.DefaultTheme)); theme != "" {
		form.Theme = theme
	}
	form.GenerateImage = !strings.EqualFold(prompt(s.in, s.out, "Generate image? [Y/n] "), "n")
	if form.GenerateImage {
		form.TextOnlyImage = isYes(prompt(s.in, s.out, "Text only image? [y/N] "))
	}
	if platforms := prompt(s.in, s.out, "Platforms, comma separated (linkedin,x): "); platforms != "" {
		form.Platforms = nil
		for _, p := range strings.Split(platforms, ",") {
			form.TogglePlatform(strings.ToLower(strings.TrimSpace(p)))
		}
	}

	if !s.d.SubmitCreate(form) && s.d.Result() == nil {
		fmt.Fprintln(s.out, "Nothing to submit.")
		return
	}
	s.closeResult(context.Background())
}

// closeResult prints the pending notification and dismisses it.
func (s *shell) closeResult(ctx context.Context) {
	r := s.d.Result()
	if r == nil {
		return
	}
	title := "Error"
	if r.Success {
		title = "Success"
	}
	fmt.Fprintf(s.out, "%s: %s\n", title, r.Message)
	s.d.CloseResult(ctx)
}

func printPosts(w io.Writer, d *dashboard.Dashboard) {
	counts := d.Counts()
	fmt.Fprintf(w, "Draft %d  Published %d  All %d\n", counts.Draft, counts.Published, counts.All)

	posts := d.Visible()
	if len(posts) == 0 {
		fmt.Fprintln(w, "No posts.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tSTATUS\tDETAILS")
	for _, p := range posts {
		if p.ID == dashboard.ShimmerID {
			fmt.Fprintln(tw, "…\tgenerating\tdraft\t")
			continue
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", p.ID, dashboard.CardTitle(p), dashboard.StatusLabel(p), dashboard.CardSubtitle(p))
	}
	tw.Flush()
}

func prompt(in *bufio.Scanner, out io.Writer, label string) string {
	fmt.Fprint(out, label)
	if !in.Scan() {
		return ""
	}
	return strings.TrimSpace(in.Text())
}

func confirm(in *bufio.Scanner, out io.Writer, question string) bool {
	return isYes(prompt(in, out, question+" [y/N] "))
}

func isYes(answer string) bool {
	a := strings.ToLower(answer)
	return a == "y" || a == "yes"
}
