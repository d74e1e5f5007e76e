package main

import (
	"testing"

	"github.com/spf13/cobra"
)

func TestPassthroughArgs(t *testing.T) {
	tests := []struct {
		name    string
		argv    []string
		want    []string
		wantErr bool
	}{
		{name: "no args", argv: []string{}, want: nil},
		{name: "after dash", argv: []string{"--", "--features", "foo", "-j4"}, want: []string{"--features", "foo", "-j4"}},
		{name: "empty after dash", argv: []string{"--"}, want: nil},
		{name: "stray positional", argv: []string{"extra"}, wantErr: true},
		{name: "positional before dash", argv: []string{"extra", "--", "-j4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got []string
			var gotErr error
			cmd := &cobra.Command{
				Use:  "probe",
				Args: cobra.ArbitraryArgs,
				RunE: func(c *cobra.Command, args []string) error {
					got, gotErr = passthroughArgs(c, args)
					return nil
				},
			}
			cmd.SetArgs(tt.argv)
			if err := cmd.Execute(); err != nil {
				t.Fatalf("execute: %v", err)
			}

			if tt.wantErr {
				if gotErr == nil {
					t.Fatalf("expected an error, got args %v", got)
				}
				return
			}
			if gotErr != nil {
				t.Fatalf("unexpected error: %v", gotErr)
			}
			if !slicesEqual(got, tt.want) {
				t.Errorf("passthrough = %v, want %v", got, tt.want)
			}
		})
	}
}

func slicesEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
