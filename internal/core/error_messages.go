package core

// Error codes reference
//
// Every error shown to a user carries a code that support staff can look up
// here. Typed and sentinel errors are matched first with errors.Is/As; the
// text patterns below catch errors from drivers that expose neither.
//
//	FILE001  Unsupported file format       use .csv, .txt, .xlsx or .xlsm
//	FILE002  File could not be read        re-export the spreadsheet
//	FILE003  File too large                split the file
//	FILE004  No file                       select a file to import
//	STORE001 Stored data is unreadable     repair or restore the collection file
//	STORE002 Duplicate record id           use another id or omit it
//	STORE003 Storage unavailable           try again in a few moments
//	REC001   Record not found              refresh the list
//	REC002   Invalid quantity              enter a whole number above zero
//	REC003   Insufficient stock            lower the quantity or restock
//	ENT001   Unknown entity                check the entity name
//	IMP001   Import not available          add records one by one
//	REQ001   Invalid request               check the request body and parameters
//	UPL002   System busy                   wait and try again
//	UPL004   Request cancelled             try again
//	UPL005   Request timed out             try a smaller file
//	ERR000   Unexpected error              check the application logs

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/JonMunkholm/assettrack/internal/store"
	"github.com/JonMunkholm/assettrack/internal/tabular"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorRule matches an error and names its user message.
type errorRule struct {
	match func(error) bool
	msg   UserMessage
}

func is(target error) func(error) bool {
	return func(err error) bool { return errors.Is(err, target) }
}

func asType[T error]() func(error) bool {
	return func(err error) bool {
		var target T
		return errors.As(err, &target)
	}
}

func contains(patterns ...string) func(error) bool {
	return func(err error) bool {
		s := strings.ToLower(err.Error())
		for _, p := range patterns {
			if strings.Contains(s, p) {
				return true
			}
		}
		return false
	}
}

// errorRules is evaluated in order; the first match wins.
var errorRules = []errorRule{
	// File errors
	{asType[*tabular.UnsupportedFormatError](), UserMessage{
		Message: "Unsupported file format",
		Action:  "Upload a .csv, .txt, .xlsx or .xlsm file",
		Code:    "FILE001",
	}},
	{asType[*tabular.MalformedFileError](), UserMessage{
		Message: "The file could not be read",
		Action:  "Open the file, save it again as .xlsx or .csv and retry",
		Code:    "FILE002",
	}},
	{is(ErrFileTooLarge), UserMessage{
		Message: "File exceeds the maximum size limit",
		Action:  "Split the file into smaller files",
		Code:    "FILE003",
	}},
	{is(ErrNoFile), UserMessage{
		Message: "No file was selected",
		Action:  "Select a CSV or XLSX file to import",
		Code:    "FILE004",
	}},

	// Store errors
	{is(store.ErrCorrupt), UserMessage{
		Message: "Stored data is unreadable",
		Action:  "Repair or restore the collection file; it was left untouched",
		Code:    "STORE001",
	}},
	{is(store.ErrDuplicateID), UserMessage{
		Message: "A record with this ID already exists",
		Action:  "Use a different id or leave it empty",
		Code:    "STORE002",
	}},

	// Record and entity errors
	{is(ErrRecordNotFound), UserMessage{
		Message: "Record not found",
		Action:  "The record may have been removed. Refresh the list",
		Code:    "REC001",
	}},
	{is(ErrInvalidQuantity), UserMessage{
		Message: "Invalid quantity",
		Action:  "Enter a whole number greater than zero",
		Code:    "REC002",
	}},
	{is(ErrInsufficientStock), UserMessage{
		Message: "Not enough items in stock",
		Action:  "Lower the quantity or restock the item first",
		Code:    "REC003",
	}},
	{is(ErrUnknownEntity), UserMessage{
		Message: "Unknown entity",
		Action:  "Check the entity name",
		Code:    "ENT001",
	}},
	{is(ErrImportNotSupported), UserMessage{
		Message: "Import is not available for this entity",
		Action:  "Add the records one by one",
		Code:    "IMP001",
	}},

	{is(ErrInvalidRequest), UserMessage{
		Message: "The request could not be understood",
		Action:  "Check the request body and parameters",
		Code:    "REQ001",
	}},

	// Upload errors
	{is(ErrTooManyUploads), UserMessage{
		Message: "Too many imports in progress",
		Action:  "Please wait a moment and try again",
		Code:    "UPL002",
	}},
	{is(context.Canceled), UserMessage{
		Message: "Request was cancelled",
		Action:  "Please try again",
		Code:    "UPL004",
	}},
	{is(context.DeadlineExceeded), UserMessage{
		Message: "Request timed out",
		Action:  "Try a smaller file or try again later",
		Code:    "UPL005",
	}},

	// Backend connectivity, reported by drivers as text
	{contains("connection refused", "connection reset", "database is locked", "no such host"), UserMessage{
		Message: "Storage is unavailable",
		Action:  "Please try again in a few moments",
		Code:    "STORE003",
	}},
}

// defaultMessage is returned when no rule matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Unknown errors map to ERR000; nil maps to the zero UserMessage.
//
//	msg := MapError(fmt.Errorf("load vpn: %w", store.ErrCorrupt))
//	// msg.Code == "STORE001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	for _, rule := range errorRules {
		if rule.match(err) {
			return refine(rule.msg, err)
		}
	}

	return defaultMessage
}

// refine adds details carried by err to its generic message.
func refine(msg UserMessage, err error) UserMessage {
	var unknown *UnknownEntityError
	if errors.As(err, &unknown) && len(unknown.Suggestions) > 0 {
		msg.Action = fmt.Sprintf("Did you mean %s?", strings.Join(unknown.Suggestions, " or "))
	}
	return msg
}

// FormatUserError renders an error as "Message (Code: XXX). Action".
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}
