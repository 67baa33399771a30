package cli

import (
	"testing"

	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTemplateRef(t *testing.T) {
	tests := []struct {
		arg  string
		want templateRef
	}{
		{arg: "lab", want: templateRef{name: "lab"}},
		{arg: "COMP1511:lab", want: templateRef{source: "COMP1511", name: "lab"}},
		{arg: ":lab", want: templateRef{source: "", name: "lab"}},
		{arg: "a:b:c", want: templateRef{source: "a", name: "b:c"}},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTemplateRef(tt.arg))
		})
	}
}

func TestTargetCourse(t *testing.T) {
	tests := []struct {
		name    string
		ref     templateRef
		course  string
		want    string
		wantErr bool
	}{
		{name: "source and course", ref: templateRef{source: "SRC", name: "lab"}, course: "DST", want: "DST"},
		{name: "course only", ref: templateRef{name: "lab"}, course: "DST", want: "DST"},
		{name: "source only", ref: templateRef{source: "SRC", name: "lab"}, want: "SRC"},
		{name: "neither", ref: templateRef{name: "lab"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := targetCourse(tt.ref, tt.course)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrTemplateCourseCodeMissing))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
