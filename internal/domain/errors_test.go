package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestFetchErrorClassification(t *testing.T) {
	transient := &FetchError{Kind: FetchTransient, Err: errors.New("timeout")}
	permanent := &FetchError{Kind: FetchPermanent, Err: errors.New("bad status")}

	if !IsTransient(transient) || IsPermanent(transient) {
		t.Error("transient error misclassified")
	}
	if !IsPermanent(permanent) || IsTransient(permanent) {
		t.Error("permanent error misclassified")
	}
	if IsTransient(nil) || IsPermanent(nil) {
		t.Error("nil error should be neither kind")
	}
	if IsTransient(errors.New("plain")) || IsPermanent(errors.New("plain")) {
		t.Error("untyped error should be neither kind")
	}
}

func TestFetchErrorSurvivesWrapping(t *testing.T) {
	inner := &FetchError{Kind: FetchTransient, Err: errors.New("refused")}
	wrapped := fmt.Errorf("tick failed: %w", inner)

	if !IsTransient(wrapped) {
		t.Error("wrapping should not hide the fetch error kind")
	}
	if !errors.Is(errors.Unwrap(wrapped), inner) {
		t.Error("unwrap chain broken")
	}
}

func TestNormalized(t *testing.T) {
	tests := []struct {
		name  string
		track Track
		want  Track
	}{
		{
			name:  "Blank title and artist",
			track: Track{Album: "Album"},
			want:  Track{Title: UnknownField, Artist: UnknownField, Album: "Album"},
		},
		{
			name:  "Populated track untouched",
			track: Track{Title: "Song", Artist: "Artist"},
			want:  Track{Title: "Song", Artist: "Artist"},
		},
		{
			name:  "Album may stay empty",
			track: Track{Title: "Song", Artist: "Artist", Album: ""},
			want:  Track{Title: "Song", Artist: "Artist"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.track.Normalized(); got != tt.want {
				t.Errorf("Normalized() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
