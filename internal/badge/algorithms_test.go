package badge

import (
	"reflect"
	"testing"

	"github.com/SlpAus/skillswap-connect-backend/internal/user"
	"gorm.io/datatypes"
)

func registered(name string, offered, wanted []string) user.User {
	return user.User{
		UUID:          name + "-id",
		Username:      name,
		SkillsOffered: datatypes.JSONSlice[string](offered),
		SkillsWanted:  datatypes.JSONSlice[string](wanted),
	}
}

func usernames(rows []Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.Username)
	}
	return out
}

func TestLeaderboardOrdersByBadgeCount(t *testing.T) {
	holdings := []Holding{
		{Key: "p", Username: "P", Badges: []string{"a", "b", "c"}},
		{Key: "q", Username: "Q", Badges: []string{"a"}},
		{Key: "r", Username: "R", Badges: []string{"a", "b", "c"}},
	}

	rows := BuildLeaderboard(nil, holdings)

	if got := usernames(rows); !reflect.DeepEqual(got, []string{"P", "R", "Q"}) {
		t.Errorf("unexpected order %v", got)
	}
	counts := []int{rows[0].Badges, rows[1].Badges, rows[2].Badges}
	if !reflect.DeepEqual(counts, []int{3, 3, 1}) {
		t.Errorf("unexpected counts %v", counts)
	}
	for _, r := range rows {
		if r.Badges != len(r.BadgesList) {
			t.Errorf("%s: badges=%d but list has %d", r.Username, r.Badges, len(r.BadgesList))
		}
		if r.SkillsOffered == nil || r.SkillsWanted == nil {
			t.Errorf("%s: skill lists must be empty arrays, not null", r.Username)
		}
	}
}

func TestLeaderboardIncludesEveryone(t *testing.T) {
	users := []user.User{
		registered("Alex", []string{"Guitar"}, []string{"Coding"}),
		registered("zoe", nil, nil),
	}
	holdings := []Holding{
		{Key: "alex", Username: "alex", Badges: []string{"Mentor"}},
		{Key: "ghost", Username: "ghost", Badges: []string{"Helper"}},
	}

	rows := BuildLeaderboard(users, holdings)

	if got := usernames(rows); !reflect.DeepEqual(got, []string{"Alex", "ghost", "zoe"}) {
		t.Fatalf("unexpected rows %v", got)
	}
	if !reflect.DeepEqual(rows[0].SkillsOffered, []string{"Guitar"}) || !reflect.DeepEqual(rows[0].BadgesList, []string{"Mentor"}) {
		t.Errorf("registered user row not merged: %+v", rows[0])
	}
	if rows[2].Badges != 0 || rows[2].BadgesList == nil {
		t.Errorf("zero-badge user must have an empty list: %+v", rows[2])
	}
}

func TestLeaderboardIsStable(t *testing.T) {
	users := []user.User{registered("b", nil, nil), registered("a", nil, nil), registered("c", nil, nil)}

	first := BuildLeaderboard(users, nil)
	second := BuildLeaderboard(users, nil)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical results across calls")
	}
	if got := usernames(first); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Errorf("ties must break by username, got %v", got)
	}
}
