package filter

import (
	"strings"
)

// GroupID identifies one filter dimension.
type GroupID string

const (
	GroupCategory  GroupID = "category"
	GroupChannel   GroupID = "channel"
	GroupTickRange GroupID = "tick_range"
	GroupNode      GroupID = "node"
	GroupTrack     GroupID = "track"
	GroupString    GroupID = "string"
)

// Fields maps the composer's dimensions onto row field keys.
type Fields struct {
	Channel string
	Tick    string
	Track   string
}

// DefaultFields uses the package field constants.
var DefaultFields = Fields{
	Channel: FieldChannel,
	Tick:    FieldTick,
	Track:   FieldTrack,
}

// Group is a dimension whose members are ORed. A group without members
// rejects every row.
type Group struct {
	ID      GroupID
	Members []Predicate
}

func (g Group) match(r Row) bool {
	for _, p := range g.Members {
		if p(r) {
			return true
		}
	}
	return false
}

// Inclusion is the composed predicate. The zero value includes everything.
type Inclusion struct {
	groups     []Group
	visibility CategoryVisibility
}

// PassThrough reports whether no filter is installed at all, as opposed to
// an active filter that happens to accept every row.
func (in Inclusion) PassThrough() bool {
	return len(in.groups) == 0
}

// Groups returns the IDs of the active groups in evaluation order.
func (in Inclusion) Groups() []GroupID {
	ids := make([]GroupID, len(in.groups))
	for i, g := range in.groups {
		ids[i] = g.ID
	}
	return ids
}

// Include evaluates the composed predicate for r.
func (in Inclusion) Include(r Row) bool {
	if len(in.groups) == 0 {
		return true
	}
	if in.visibility == CategoriesShown && r.IsCategory() {
		return true
	}
	for _, g := range in.groups {
		if !g.match(r) {
			return false
		}
	}
	return true
}

// Predicate returns Include as a Predicate value.
func (in Inclusion) Predicate() Predicate {
	return in.Include
}

func (in Inclusion) String() string {
	if in.PassThrough() {
		return "pass-through"
	}
	ids := make([]string, len(in.groups))
	for i, g := range in.groups {
		ids[i] = string(g.ID)
	}
	return "categories " + in.visibility.String() + ": " + strings.Join(ids, " AND ")
}

// Composer turns criteria and free text into an Inclusion.
type Composer struct {
	fields Fields
}

// NewComposer returns a composer reading the given field keys.
func NewComposer(fields Fields) Composer {
	return Composer{fields: fields}
}

// Compose rebuilds the inclusion predicate from scratch. A nil criteria
// means only the string filter applies.
func (c Composer) Compose(criteria *Criteria, text string, visibility CategoryVisibility) Inclusion {
	var groups []Group

	if visibility == CategoriesHidden {
		groups = append(groups, Group{ID: GroupCategory, Members: []Predicate{NotCategory}})
	}

	if criteria != nil {
		if criteria.Channels != nil {
			groups = append(groups, c.channelGroup(criteria))
		}
		if criteria.On(LimitTicks) {
			groups = append(groups, Group{
				ID:      GroupTickRange,
				Members: []Predicate{Range(c.fields.Tick, criteria.TickFrom, criteria.TickTo)},
			})
		}
		if criteria.On(FilterByNode) && len(criteria.Nodes) > 0 {
			groups = append(groups, Group{
				ID:      GroupNode,
				Members: []Predicate{HierarchyMembership(criteria.Nodes...)},
			})
		}
		if criteria.On(LimitTracks) {
			groups = append(groups, Group{
				ID:      GroupTrack,
				Members: []Predicate{SetMembership(c.fields.Track, criteria.Tracks...)},
			})
		}
	}

	if text != "" {
		groups = append(groups, Group{ID: GroupString, Members: []Predicate{StringMatch(text)}})
	}

	return Inclusion{groups: groups, visibility: visibility}
}

func (c Composer) channelGroup(criteria *Criteria) Group {
	g := Group{ID: GroupChannel}
	if criteria.On(ShowChannelIndependent) {
		g.Members = append(g.Members, AbsentOrMember(c.fields.Channel))
	}
	for _, ch := range criteria.EnabledChannels() {
		g.Members = append(g.Members, SetMembership(c.fields.Channel, ch))
	}
	return g
}
