// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-comment-board/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const (
	registerName = iota
	registerEmail
	registerPassword
)

func newRegisterForm() authForm {
	f := newAuthForm("Register", "Already registered? ctrl+l Login", "Name", "Email", "Password")
	f.inputs[registerName].Placeholder = "name"
	f.inputs[registerEmail].Placeholder = "email"
	f.inputs[registerPassword].Placeholder = "password"
	f.inputs[registerPassword].EchoMode = textinput.EchoPassword
	f.inputs[registerPassword].EchoCharacter = '*'
	return f
}

func registerDraft(f authForm) models.RegisterDraft {
	return models.RegisterDraft{
		Name:     strings.TrimSpace(f.value(registerName)),
		Email:    strings.TrimSpace(f.value(registerEmail)),
		Password: f.value(registerPassword),
	}
}
