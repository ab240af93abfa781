// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-comment-board/internal/app"
	"github.com/MKhiriev/go-comment-board/internal/logger"
	"github.com/MKhiriev/go-comment-board/internal/service"
	"github.com/MKhiriev/go-comment-board/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type focusArea int

const (
	focusForm focusArea = iota
	focusFeed
)

type modal int

const (
	modalNone modal = iota
	modalLogin
	modalRegister
	modalBuildInfo
)

// appModel is the comment board page. Update is the only place where the
// page state changes; services run in commands and report back with
// messages.
type appModel struct {
	ctx       context.Context
	sessions  service.SessionService
	auth      service.AuthService
	comments  service.CommentService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	requests *requestTracker

	session models.Session

	form     commentFormModel
	feed     feedModel
	login    authForm
	register authForm
	notice   noticeModel

	focus   focusArea
	modal   modal
	loading bool

	quitting bool
}

func newAppModel(
	ctx context.Context,
	sessions service.SessionService,
	auth service.AuthService,
	comments service.CommentService,
	buildInfo models.AppBuildInfo,
	logger *logger.Logger,
) appModel {
	m := appModel{
		ctx:       ctx,
		sessions:  sessions,
		auth:      auth,
		comments:  comments,
		buildInfo: buildInfo,
		logger:    logger,
		requests:  newRequestTracker(ctx),
		form:      newCommentFormModel(),
		feed:      newFeedModel(),
		login:     newLoginForm(),
		register:  newRegisterForm(),
	}

	if session, ok := sessions.Current(); ok {
		m.session = session
		m.form = m.form.withIdentity(session.User)
	}
	return m
}

func (m appModel) authenticated() bool {
	return !m.session.IsZero()
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.loadFeed(),
		waitForSessionEvent(m.ctx, m.sessions.Events()),
		waitForFeedUpdate(m.ctx, m.comments.Updates()),
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			m.quitting = true
			m.requests.cancelAll()
			return m, tea.Quit
		}
		switch m.modal {
		case modalBuildInfo:
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.buildInfo) {
				m.modal = modalNone
			}
			return m, nil
		case modalLogin:
			return m.updateLoginModal(msg)
		case modalRegister:
			return m.updateRegisterModal(msg)
		}
		return m.updatePage(msg)

	case loginResultMsg:
		return m.handleLoginResult(msg)
	case registerResultMsg:
		return m.handleRegisterResult(msg)
	case submitResultMsg:
		return m.handleSubmitResult(msg)
	case feedLoadedMsg:
		if !m.requests.finish(requestFeed, msg.seq) {
			return m, nil
		}
		m = m.applyFeed(msg.comments, msg.err)
		return m, nil
	case feedUpdateMsg:
		m = m.applyFeed(msg.update.Comments, msg.update.Err)
		return m, waitForFeedUpdate(m.ctx, m.comments.Updates())
	case sessionEventMsg:
		return m.handleSessionEvent(msg)
	case logoutResultMsg:
		return m.handleLogoutResult(msg)
	case copiedMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Str("func", "appModel.Update").Msg("clipboard write failed")
			cmd := m.notice.set(app.MsgClipboardUnavailable, true)
			return m, cmd
		}
		cmd := m.notice.set(app.MsgCopied, false)
		return m, cmd
	case clearNoticeMsg:
		m.notice.clear(msg.id)
		return m, nil
	}

	return m.forwardToInput(msg)
}

// ── page ─────────────────────────────────────────────────────────────────────

func (m appModel) updatePage(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.login):
		if !m.authenticated() {
			m.modal = modalLogin
		}
		return m, nil
	case key.Matches(msg, keys.register):
		if !m.authenticated() {
			m.modal = modalRegister
		}
		return m, nil
	case key.Matches(msg, keys.logout):
		if m.authenticated() {
			return m, cmdLogout(m.ctx, m.auth)
		}
		return m, nil
	case key.Matches(msg, keys.buildInfo):
		m.modal = modalBuildInfo
		return m, nil
	}

	if m.focus == focusFeed {
		return m.updateFeed(msg)
	}
	return m.updateForm(msg)
}

func (m appModel) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.tab):
		var inForm bool
		if m.form, inForm = m.form.next(); !inForm {
			m.focus = focusFeed
		}
		return m, nil
	case key.Matches(msg, keys.backtab):
		var inForm bool
		if m.form, inForm = m.form.prev(); !inForm {
			m.focus = focusFeed
		}
		return m, nil
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.submit):
		return m.submitComment()
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.update(msg)
	return m, cmd
}

func (m appModel) updateFeed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.up):
		if m.feed.idx > 0 {
			m.feed.idx--
		}
	case key.Matches(msg, keys.down):
		if m.feed.idx < len(m.feed.comments)-1 {
			m.feed.idx++
		}
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab), key.Matches(msg, keys.esc):
		m.focus = focusForm
		m.form = m.form.first()
	case key.Matches(msg, keys.refresh):
		m.feed.loading = true
		return m, m.loadFeed()
	case key.Matches(msg, keys.copy):
		if c, ok := m.feed.current(); ok {
			return m, cmdCopyToClipboard(c.Message)
		}
	}
	return m, nil
}

// submitComment sends the draft unless a submission is in flight. Empty
// fields are rejected by the service before any request.
func (m appModel) submitComment() (tea.Model, tea.Cmd) {
	if m.loading {
		return m, nil
	}
	m.loading = true
	ctx, seq := m.requests.begin(requestSubmit)
	return m, cmdSubmitComment(ctx, seq, m.comments, m.form.draft())
}

func (m appModel) handleSubmitResult(msg submitResultMsg) (tea.Model, tea.Cmd) {
	if !m.requests.finish(requestSubmit, msg.seq) {
		return m, nil
	}
	m.loading = false

	if msg.err != nil {
		if errors.Is(msg.err, context.Canceled) {
			return m, nil
		}
		cmd := m.notice.set(service.UserMessage(msg.err, app.MsgSubmitCommentFailed), true)
		return m, cmd
	}

	m.form = m.form.clearMessage()
	m.comments.ScheduleRefresh(m.ctx)
	cmd := m.notice.set(app.MsgCommentSubmitted, false)
	return m, cmd
}

func (m appModel) loadFeed() tea.Cmd {
	ctx, seq := m.requests.begin(requestFeed)
	return cmdLoadFeed(ctx, seq, m.comments)
}

// applyFeed replaces the list on success. On failure the previous list
// stays and only the status line changes.
func (m appModel) applyFeed(comments []models.Comment, err error) appModel {
	m.feed.loading = false
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			m.feed.status = app.MsgLoadCommentsFailed
		}
		return m
	}
	m.feed = m.feed.replace(comments)
	return m
}

// ── session ──────────────────────────────────────────────────────────────────

// startSession shows the new session and freezes the draft identity.
func (m appModel) startSession(session models.Session) appModel {
	m.session = session
	m.modal = modalNone
	m.form = m.form.withIdentity(session.User)
	if m.focus == focusFeed {
		m.form = m.form.blur()
	}
	return m
}

// endSession returns the page to anonymous and empties the whole draft.
func (m appModel) endSession() appModel {
	m.session = models.Session{}
	m.form = m.form.reset()
	if m.focus == focusFeed {
		m.form = m.form.blur()
	}
	return m
}

// syncSession catches the page up with the session owner when a dropped
// login or register had already started a session.
func (m appModel) syncSession() (tea.Model, tea.Cmd) {
	current, ok := m.sessions.Current()
	if !ok || current.Token == m.session.Token {
		return m, nil
	}

	modal := m.modal
	m = m.startSession(current)
	if modal == modalBuildInfo {
		m.modal = modal
	}
	cmd := m.notice.set(app.MsgWelcome+current.User.Name, false)
	return m, cmd
}

func (m appModel) handleSessionEvent(msg sessionEventMsg) (tea.Model, tea.Cmd) {
	next := waitForSessionEvent(m.ctx, m.sessions.Events())

	switch msg.event {
	case service.SessionExpired:
		m = m.endSession()
		cmd := m.notice.set(app.MsgSessionExpired, true)
		return m, tea.Batch(cmd, next)
	case service.SessionReset:
		m = m.endSession()
		return m, next
	}
	return m, next
}

func (m appModel) handleLogoutResult(msg logoutResultMsg) (tea.Model, tea.Cmd) {
	m = m.endSession()
	if msg.err != nil {
		m.logger.Err(msg.err).Str("func", "appModel.handleLogoutResult").Msg("logout did not clear the stored session")
		cmd := m.notice.set(service.UserMessage(msg.err, app.MsgLoggedOut), true)
		return m, cmd
	}
	cmd := m.notice.set(app.MsgLoggedOut, false)
	return m, cmd
}

// ── modals ───────────────────────────────────────────────────────────────────

func (m appModel) updateLoginModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.requests.abort(requestLogin)
		m.login.submitting = false
		m.login.errMsg = ""
		m.modal = modalNone
		return m, nil
	case key.Matches(msg, keys.register):
		if !m.login.submitting {
			m.login.errMsg = ""
			m.modal = modalRegister
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.login = m.login.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.login = m.login.focusPrev()
		return m, nil
	case key.Matches(msg, keys.submit), key.Matches(msg, keys.enter) && m.login.onLastField():
		if m.login.submitting {
			return m, nil
		}
		m.login.submitting = true
		m.login.errMsg = ""
		ctx, seq := m.requests.begin(requestLogin)
		return m, cmdLogin(ctx, seq, m.auth, loginDraft(m.login))
	case key.Matches(msg, keys.enter):
		m.login = m.login.focusNext()
		return m, nil
	}

	var cmd tea.Cmd
	m.login, cmd = m.login.update(msg)
	return m, cmd
}

func (m appModel) updateRegisterModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.requests.abort(requestRegister)
		m.register.submitting = false
		m.register.errMsg = ""
		m.modal = modalNone
		return m, nil
	case key.Matches(msg, keys.login):
		if !m.register.submitting {
			m.register.errMsg = ""
			m.modal = modalLogin
		}
		return m, nil
	case key.Matches(msg, keys.tab):
		m.register = m.register.focusNext()
		return m, nil
	case key.Matches(msg, keys.backtab):
		m.register = m.register.focusPrev()
		return m, nil
	case key.Matches(msg, keys.submit), key.Matches(msg, keys.enter) && m.register.onLastField():
		if m.register.submitting {
			return m, nil
		}
		m.register.submitting = true
		m.register.errMsg = ""
		ctx, seq := m.requests.begin(requestRegister)
		return m, cmdRegister(ctx, seq, m.auth, registerDraft(m.register))
	case key.Matches(msg, keys.enter):
		m.register = m.register.focusNext()
		return m, nil
	}

	var cmd tea.Cmd
	m.register, cmd = m.register.update(msg)
	return m, cmd
}

func (m appModel) handleLoginResult(msg loginResultMsg) (tea.Model, tea.Cmd) {
	if !m.requests.finish(requestLogin, msg.seq) {
		return m.syncSession()
	}
	m.login.submitting = false

	if msg.err != nil {
		m.login.errMsg = service.UserMessage(msg.err, app.MsgLoginFailed)
		return m, nil
	}

	m = m.startSession(msg.session)
	m.login = m.login.reset()
	cmd := m.notice.set(app.MsgWelcome+msg.session.User.Name, false)
	return m, cmd
}

func (m appModel) handleRegisterResult(msg registerResultMsg) (tea.Model, tea.Cmd) {
	if !m.requests.finish(requestRegister, msg.seq) {
		return m.syncSession()
	}
	m.register.submitting = false

	if msg.err != nil {
		m.register.errMsg = service.UserMessage(msg.err, app.MsgRegistrationFailed)
		return m, nil
	}

	m = m.startSession(msg.session)
	m.register = m.register.reset()
	cmd := m.notice.set(app.MsgWelcome+msg.session.User.Name, false)
	return m, cmd
}

// forwardToInput passes non-key messages (cursor blink) to the focused input.
func (m appModel) forwardToInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.modal == modalLogin:
		m.login, cmd = m.login.update(msg)
	case m.modal == modalRegister:
		m.register, cmd = m.register.update(msg)
	case m.modal == modalNone && m.focus == focusForm:
		m.form, cmd = m.form.update(msg)
	}
	return m, cmd
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m appModel) View() string {
	if m.quitting {
		return ""
	}
	if m.modal == modalBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	var b strings.Builder
	b.WriteString(m.headerView())
	b.WriteString("\n")
	if notice := m.notice.View(); notice != "" {
		b.WriteString(notice)
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch m.modal {
	case modalLogin:
		b.WriteString(m.login.View())
	case modalRegister:
		b.WriteString(m.register.View())
	default:
		b.WriteString(m.form.View(m.focus == focusForm, m.loading))
		b.WriteString("\n\n")
		b.WriteString(m.feed.View(m.focus == focusFeed))
	}

	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("ctrl+b about  ctrl+c quit"))
	return appStyle.Render(b.String())
}

func (m appModel) headerView() string {
	title := titleStyle.Render("Comment Board")
	if m.authenticated() {
		return title + "   " + app.MsgWelcome + m.session.User.Name + "   " + helpStyle.Render("ctrl+o Logout")
	}
	return title + "   " + helpStyle.Render("ctrl+l Login  ctrl+r Register")
}
