package core

import (
	"errors"
	"reflect"
	"testing"
)

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile *Profile
		wantErr error
	}{
		{
			name: "valid profile",
			profile: &Profile{
				Id:       IDFromContent("a.txt"),
				Filename: "a.txt",
				FullText: "Built APIs with Python",
			},
			wantErr: nil,
		},
		{
			name: "valid profile with empty skill set",
			profile: &Profile{
				Id:       IDFromContent("b.txt"),
				Filename: "b.txt",
				FullText: "text",
				SkillSet: nil,
			},
			wantErr: nil,
		},
		{
			name:    "nil profile",
			profile: nil,
			wantErr: ErrInvalidProfile,
		},
		{
			name:    "empty filename",
			profile: &Profile{FullText: "text"},
			wantErr: ErrEmptyFilename,
		},
		{
			name:    "blank full text",
			profile: &Profile{Filename: "a.txt", FullText: "   \n"},
			wantErr: ErrEmptyFullText,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(tt.profile)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("got %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRankQuery(t *testing.T) {
	if err := ValidateRankQuery(RankQuery{Text: "backend engineer", TopK: 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateRankQuery(RankQuery{Text: "  "}); !errors.Is(err, ErrEmptyJobDescription) {
		t.Errorf("got %v, want ErrEmptyJobDescription", err)
	}
	if err := ValidateRankQuery(RankQuery{Text: "x", TopK: -1}); !errors.Is(err, ErrInvalidTopK) {
		t.Errorf("got %v, want ErrInvalidTopK", err)
	}
}

func TestValidateRetrievalQuery(t *testing.T) {
	if err := ValidateRetrievalQuery(RetrievalQuery{Text: "who knows sql?", TopK: 3}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := ValidateRetrievalQuery(RetrievalQuery{Text: ""}); !errors.Is(err, ErrEmptyQuery) {
		t.Errorf("got %v, want ErrEmptyQuery", err)
	}
}

func TestNormalizeSkills(t *testing.T) {
	got := NormalizeSkills([]string{"Python", "  SQL ", "python", "", "docker"})
	want := []string{"docker", "python", "sql"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeSkills = %v, want %v", got, want)
	}

	if got := NormalizeSkills(nil); len(got) != 0 {
		t.Errorf("expected empty result, got %v", got)
	}
}
