// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"crypto/subtle"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

// EnvPassword is checked before any prompt.
const EnvPassword = "NOTEBOOK_PASSWORD"

var (
	// ErrNoTerminal is returned when a password must be prompted for but
	// stdin is not a terminal.
	ErrNoTerminal = errors.New("cannot prompt for a password: stdin is not a terminal, set " + EnvPassword)
	// ErrPasswordMismatch is returned when the confirmation differs.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// PasswordSource supplies note passwords.
type PasswordSource interface {
	// Password asks for the password of an existing note.
	Password(prompt string) (string, error)
	// NewPassword asks for a password for a note's first save, twice.
	NewPassword() (string, error)
}

// TerminalPasswords reads passwords from NOTEBOOK_PASSWORD or, failing
// that, from the terminal without echo.
type TerminalPasswords struct {
	in        *os.File
	out       io.Writer
	lookupEnv func(string) (string, bool)
}

func NewTerminalPasswords(in *os.File, out io.Writer) *TerminalPasswords {
	return &TerminalPasswords{in: in, out: out, lookupEnv: os.LookupEnv}
}

func (p *TerminalPasswords) Password(prompt string) (string, error) {
	if pw, ok := p.fromEnv(); ok {
		return pw, nil
	}

	raw, err := p.read(prompt)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(raw)

	return string(raw), nil
}

func (p *TerminalPasswords) NewPassword() (string, error) {
	if pw, ok := p.fromEnv(); ok {
		return pw, nil
	}

	first, err := p.read("New password: ")
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(first)

	second, err := p.read("Confirm password: ")
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(second)

	if subtle.ConstantTimeCompare(first, second) != 1 {
		return "", ErrPasswordMismatch
	}
	return string(first), nil
}

func (p *TerminalPasswords) fromEnv() (string, bool) {
	pw, ok := p.lookupEnv(EnvPassword)
	if !ok || pw == "" {
		return "", false
	}
	return pw, true
}

func (p *TerminalPasswords) read(prompt string) ([]byte, error) {
	fd := int(p.in.Fd())
	if !term.IsTerminal(fd) {
		return nil, ErrNoTerminal
	}

	fmt.Fprint(p.out, prompt)
	pw, err := term.ReadPassword(fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return nil, fmt.Errorf("read password: %w", err)
	}
	return pw, nil
}
