// Package dashboard is the post grid without a screen: tabs, confirmations, results and
// the create flow, driven by whatever front end holds a *Dashboard.
package dashboard

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/maheshrc27/adspark/internal/models"
	"github.com/maheshrc27/adspark/internal/transfer"
)

const (
	ShimmerID    = "__shimmer_new__"
	RefetchDelay = 15 * time.Second

	MessageSubmitted    = "Post request successfully submitted."
	MessageDeleteFailed = "Failed to delete post."
)

type Tab string

const (
	TabDraft     Tab = "draft"
	TabPublished Tab = "published"
	TabAll       Tab = "all"
)

type TabCounts struct {
	Draft     int
	Published int
	All       int
}

// Result is the notification shown after approve, delete or create. PostID is set only
// for approvals; closing such a result refreshes that post.
type Result struct {
	Success bool
	Message string
	PostID  string
}

type PostsAPI interface {
	List(ctx context.Context) ([]*models.SocialMediaPost, error)
	Get(ctx context.Context, id string) (*models.SocialMediaPost, error)
	Delete(ctx context.Context, id string) error
}

type Automation interface {
	ApprovePost(ctx context.Context, recordID string) transfer.ApprovalResult
	DispatchCreate(req transfer.CreatePostRequest)
}

type Dashboard struct {
	api        PostsAPI
	automation Automation
	scheduler  Scheduler
	delay      time.Duration

	mu             sync.Mutex
	posts          []*models.SocialMediaPost
	tab            Tab
	selectedID     string
	pendingApprove string
	pendingDelete  string
	approvingID    string
	deletingID     string
	result         *Result
	refetch        Timer
	closed         bool
}

type Option func(*Dashboard)

func WithScheduler(s Scheduler) Option {
	return func(d *Dashboard) { d.scheduler = s }
}

func WithRefetchDelay(delay time.Duration) Option {
	return func(d *Dashboard) { d.delay = delay }
}

func New(api PostsAPI, automation Automation, opts ...Option) *Dashboard {
	d := &Dashboard{
		api:        api,
		automation: automation,
		scheduler:  RealScheduler(),
		delay:      RefetchDelay,
		posts:      []*models.SocialMediaPost{},
		tab:        TabDraft,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SetPosts seeds the grid, e.g. with the list the page was rendered with.
func (d *Dashboard) SetPosts(posts []*models.SocialMediaPost) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.setPostsLocked(posts)
}

func (d *Dashboard) setPostsLocked(posts []*models.SocialMediaPost) {
	if posts == nil {
		posts = []*models.SocialMediaPost{}
	}
	d.posts = posts
	if d.selectedID != "" && d.indexLocked(d.selectedID) < 0 {
		d.selectedID = ""
	}
}

// Refresh replaces the list with the server's. On error the current list is kept.
func (d *Dashboard) Refresh(ctx context.Context) error {
	posts, err := d.api.List(ctx)
	if err != nil {
		slog.Info(err.Error())
		return err
	}
	d.SetPosts(posts)
	return nil
}

func (d *Dashboard) Posts() []*models.SocialMediaPost {
	d.mu.Lock()
	defer d.mu.Unlock()
	return slices.Clone(d.posts)
}

func (d *Dashboard) Tab() Tab {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.tab
}

func (d *Dashboard) SetTab(tab Tab) {
	d.mu.Lock()
	defer d.mu.Unlock()
	switch tab {
	case TabDraft, TabPublished, TabAll:
		d.tab = tab
	}
}

// Visible is the current tab's slice of posts in list order.
func (d *Dashboard) Visible() []*models.SocialMediaPost {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.tab == TabAll {
		return slices.Clone(d.posts)
	}
	published := d.tab == TabPublished
	visible := []*models.SocialMediaPost{}
	for _, p := range d.posts {
		if p.IsPublished() == published {
			visible = append(visible, p)
		}
	}
	return visible
}

func (d *Dashboard) Counts() TabCounts {
	d.mu.Lock()
	defer d.mu.Unlock()

	counts := TabCounts{All: len(d.posts)}
	for _, p := range d.posts {
		if p.IsPublished() {
			counts.Published++
		}
	}
	counts.Draft = counts.All - counts.Published
	return counts
}

func (d *Dashboard) Select(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == ShimmerID || d.indexLocked(id) < 0 {
		return false
	}
	d.selectedID = id
	return true
}

func (d *Dashboard) Deselect() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.selectedID = ""
}

func (d *Dashboard) Selected() *models.SocialMediaPost {
	d.mu.Lock()
	defer d.mu.Unlock()
	if i := d.indexLocked(d.selectedID); i >= 0 {
		return d.posts[i]
	}
	return nil
}

// RequestApprove opens the approve confirmation. Published posts cannot be approved again.
func (d *Dashboard) RequestApprove(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	i := d.indexLocked(id)
	if id == ShimmerID || i < 0 || d.posts[i].IsPublished() {
		return false
	}
	d.pendingApprove = id
	return true
}

func (d *Dashboard) RequestDelete(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if id == ShimmerID || d.indexLocked(id) < 0 {
		return false
	}
	d.pendingDelete = id
	return true
}

// CancelConfirm closes whichever confirmation is open, unless its action is running.
func (d *Dashboard) CancelConfirm() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.approvingID == "" {
		d.pendingApprove = ""
	}
	if d.deletingID == "" {
		d.pendingDelete = ""
	}
}

func (d *Dashboard) PendingApprove() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pendingApprove
}

func (d *Dashboard) PendingDelete() string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pendingDelete
}

func (d *Dashboard) IsApproving(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return id != "" && d.approvingID == id
}

func (d *Dashboard) IsDeleting(id string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return id != "" && d.deletingID == id
}

// ConfirmApprove sends the pending approval to the workflow and always ends with a
// result, whatever the workflow answered.
func (d *Dashboard) ConfirmApprove(ctx context.Context) {
	d.mu.Lock()
	id := d.pendingApprove
	if id == "" || d.approvingID != "" {
		d.mu.Unlock()
		return
	}
	d.approvingID = id
	d.mu.Unlock()

	res := d.automation.ApprovePost(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.approvingID = ""
	if d.pendingApprove == id {
		d.pendingApprove = ""
	}
	d.result = &Result{Success: res.Success, Message: res.Message, PostID: id}
}

// ConfirmDelete removes the pending post. On failure the confirmation stays open and the
// error is shown as a result.
func (d *Dashboard) ConfirmDelete(ctx context.Context) {
	d.mu.Lock()
	id := d.pendingDelete
	if id == "" || d.deletingID != "" {
		d.mu.Unlock()
		return
	}
	d.deletingID = id
	d.mu.Unlock()

	err := d.api.Delete(ctx, id)

	d.mu.Lock()
	defer d.mu.Unlock()
	d.deletingID = ""
	if err != nil {
		slog.Info(err.Error())
		d.result = &Result{Success: false, Message: deleteMessage(err)}
		return
	}

	d.pendingDelete = ""
	if i := d.indexLocked(id); i >= 0 {
		d.posts = slices.Delete(slices.Clone(d.posts), i, i+1)
	}
	if d.selectedID == id {
		d.selectedID = ""
	}
}

func deleteMessage(err error) string {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.Message != "" {
			return apiErr.Message
		}
		return MessageDeleteFailed
	}
	if err.Error() != "" {
		return err.Error()
	}
	return "Something went wrong."
}

func (d *Dashboard) Result() *Result {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.result == nil {
		return nil
	}
	r := *d.result
	return &r
}

// CloseResult dismisses the notification. After an approval the post is re-read and
// merged in place; a failed re-read is ignored.
func (d *Dashboard) CloseResult(ctx context.Context) {
	d.mu.Lock()
	if d.result == nil {
		d.mu.Unlock()
		return
	}
	id := d.result.PostID
	d.result = nil
	d.mu.Unlock()

	if id == "" {
		return
	}

	updated, err := d.api.Get(ctx, id)
	if err != nil || updated == nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if i := d.indexLocked(id); i >= 0 {
		posts := slices.Clone(d.posts)
		posts[i] = updated
		d.posts = posts
	}
}

// SubmitCreate dispatches the form without waiting for the workflow. An empty topic is
// ignored and returns false; a missing platform is reported as a failed result.
func (d *Dashboard) SubmitCreate(form CreateForm) bool {
	req, err := form.Request()
	if errors.Is(err, ErrEmptyTopic) {
		return false
	}
	if err != nil {
		d.mu.Lock()
		d.result = &Result{Success: false, Message: err.Error()}
		d.mu.Unlock()
		return false
	}

	d.automation.DispatchCreate(req)

	d.mu.Lock()
	defer d.mu.Unlock()

	shimmer := &models.SocialMediaPost{ID: ShimmerID, Status: models.StringPtr(models.PostStatusDraft)}
	d.posts = append([]*models.SocialMediaPost{shimmer}, d.posts...)
	d.tab = TabDraft
	d.result = &Result{Success: true, Message: MessageSubmitted}
	d.scheduleRefetchLocked()
	return true
}

// scheduleRefetchLocked keeps at most one refetch pending; a newer submit replaces it.
func (d *Dashboard) scheduleRefetchLocked() {
	if d.closed {
		return
	}
	if d.refetch != nil {
		d.refetch.Stop()
	}

	var timer Timer
	timer = d.scheduler.AfterFunc(d.delay, func() {
		d.mu.Lock()
		if d.refetch != timer || d.closed {
			d.mu.Unlock()
			return
		}
		d.mu.Unlock()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		posts, err := d.api.List(ctx)

		d.mu.Lock()
		defer d.mu.Unlock()
		if d.refetch == timer {
			d.refetch = nil
		}
		if err != nil {
			slog.Info(err.Error())
			return
		}
		if !d.closed {
			d.setPostsLocked(posts)
		}
	})
	d.refetch = timer
}

// RefetchPending reports whether a delayed refetch is still scheduled.
func (d *Dashboard) RefetchPending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.refetch != nil
}

// Close cancels the pending refetch. The dashboard should not be used afterwards.
func (d *Dashboard) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.closed = true
	if d.refetch != nil {
		d.refetch.Stop()
		d.refetch = nil
	}
}

func (d *Dashboard) indexLocked(id string) int {
	if id == "" {
		return -1
	}
	return slices.IndexFunc(d.posts, func(p *models.SocialMediaPost) bool { return p.ID == id })
}
