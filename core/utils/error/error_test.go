package error

import (
	"errors"
	"testing"
)

func TestErrorHandler_HandleError(t *testing.T) {
	handler := NewErrorHandler(1)

	err := errors.New("lookup failed: no such host")
	ctx := ErrorContext{
		Username:    "80alaajutt",
		Target:      "https://www.tiktok.com/@80alaajutt",
		ErrorSource: "ResolveUsername",
	}

	handler.HandleError(err, ctx)
	handler.HandleError(err, ctx)

	if !handler.HasErrors("80alaajutt") {
		t.Error("Expected errors recorded for 80alaajutt")
	}

	if count := handler.GetErrorCount("80alaajutt"); count != 2 {
		t.Errorf("Expected error count 2, got %d", count)
	}

	if handler.HasErrors("someoneelse") {
		t.Error("Unexpected errors recorded for unrelated username")
	}
}

func TestErrorHandler_Whitelist(t *testing.T) {
	handler := NewErrorHandler(1)
	handler.AddWhitelistedErrors("context canceled")

	err := errors.New("context canceled")
	if !handler.IsWhitelisted(err) {
		t.Error("Expected error to be whitelisted")
	}

	handler.HandleError(err, ErrorContext{Username: "80alaajutt"})
	if handler.HasErrors("80alaajutt") {
		t.Error("Whitelisted error should not be recorded")
	}
}

func TestErrorHandler_Reset(t *testing.T) {
	handler := NewErrorHandler(1)

	handler.HandleError(errors.New("boom"), ErrorContext{Username: "80alaajutt"})
	handler.Reset()

	if handler.HasErrors("80alaajutt") {
		t.Error("Expected no errors after reset")
	}
	if handler.GetErrorCount("80alaajutt") != 0 {
		t.Error("Expected zero error count after reset")
	}
}
