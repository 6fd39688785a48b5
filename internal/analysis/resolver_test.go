package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sjzar/mailstat/internal/model"
)

func strptr(s string) *string { return &s }

func TestCanonicalNameIdempotent(t *testing.T) {
	canonical := CanonicalName("John O. Smith")
	assert.Equal(t, "JOHN O SMITH", canonical)
	assert.Equal(t, canonical, CanonicalName(canonical))

	assert.Equal(t, "JOHN SMITH", CanonicalName("john.smith"))
	assert.Equal(t, "A B C", CanonicalName("  a...b   c  "))
	assert.Equal(t, "", CanonicalName(" . . "))
}

func TestResolveAllFirstSeenWins(t *testing.T) {
	rows := []model.ActorRow{
		{RawID: 1, Email: strptr("a@x.com"), DisplayName: strptr("John Smith")},
		{RawID: 2, Email: strptr("b@x.com"), DisplayName: strptr("john.smith")},
	}

	persons := ResolveAll(rows)
	require.Len(t, persons, 2)
	assert.Equal(t, model.Person{RawID: 1, UnifiedID: 1, CanonicalName: "JOHN SMITH"}, persons[0])
	assert.Equal(t, model.Person{RawID: 2, UnifiedID: 1, CanonicalName: "JOHN SMITH"}, persons[1])
}

func TestResolveRejectsBogusArtifactRow(t *testing.T) {
	r := NewResolver()
	_, ok := r.Resolve(model.ActorRow{
		RawID:       7,
		Email:       strptr("anything@enron.com"),
		DisplayName: strptr("e-mail"),
	})
	assert.False(t, ok)
}

func TestResolveRejectsUnknownNameOrDomain(t *testing.T) {
	r := NewResolver()

	// NULL address: both local part and domain are unknown.
	_, ok := r.Resolve(model.ActorRow{RawID: 1})
	assert.False(t, ok)

	// A display name cannot rescue a row without a mail domain.
	_, ok = r.Resolve(model.ActorRow{RawID: 2, DisplayName: strptr("Jane Doe")})
	assert.False(t, ok)

	// Malformed address without "@" leaves the domain unknown.
	_, ok = r.Resolve(model.ActorRow{RawID: 3, Email: strptr("not-an-address")})
	assert.False(t, ok)
}

func TestResolveNameFallsBackToLocalPart(t *testing.T) {
	r := NewResolver()

	p, ok := r.Resolve(model.ActorRow{RawID: 4, Email: strptr("jane.doe@x.com")})
	require.True(t, ok)
	assert.Equal(t, "JANE DOE", p.CanonicalName)

	// Quotes-only display name strips to empty and falls back too.
	p, ok = r.Resolve(model.ActorRow{RawID: 5, Email: strptr(`"mark.taylor"@x.com`), DisplayName: strptr(`""`)})
	require.True(t, ok)
	assert.Equal(t, "MARK TAYLOR", p.CanonicalName)
	assert.Equal(t, int64(5), p.UnifiedID)
}

func TestResolveStripsQuotesFromDisplayName(t *testing.T) {
	r := NewResolver()
	p, ok := r.Resolve(model.ActorRow{
		RawID:       6,
		Email:       strptr("x@y.com"),
		DisplayName: strptr(`"Kenneth Lay"`),
	})
	require.True(t, ok)
	assert.Equal(t, "KENNETH LAY", p.CanonicalName)
}

func TestResolveAllOrderedByRawID(t *testing.T) {
	rows := []model.ActorRow{
		{RawID: 9, Email: strptr("c@x.com"), DisplayName: strptr("Carol")},
		{RawID: 2, Email: strptr("a@x.com"), DisplayName: strptr("Alice")},
		{RawID: 5, Email: strptr("b@x.com"), DisplayName: strptr("Bob")},
	}

	persons := ResolveAll(rows)
	require.Len(t, persons, 3)
	assert.Equal(t, int64(2), persons[0].RawID)
	assert.Equal(t, int64(5), persons[1].RawID)
	assert.Equal(t, int64(9), persons[2].RawID)
}
