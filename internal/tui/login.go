// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-comment-board/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	loginEmail = iota
	loginPassword
)

func newLoginForm() authForm {
	f := newAuthForm("Login", "Don't have an account? ctrl+r Register here", "Email", "Password")
	f.inputs[loginEmail].Placeholder = "email"
	f.inputs[loginPassword].Placeholder = "password"
	f.inputs[loginPassword].EchoMode = textinput.EchoPassword
	f.inputs[loginPassword].EchoCharacter = '*'
	return f
}

func loginDraft(f authForm) models.LoginDraft {
	return models.LoginDraft{
		Email:    strings.TrimSpace(f.value(loginEmail)),
		Password: f.value(loginPassword),
	}
}
