package services

import (
	"database/sql"

	"github.com/Engagic/engagic-sub004/ent"
)

// Services bundles every repository over one shared client, in the wiring
// order the pipeline uses them.
type Services struct {
	City       *CityService
	Meeting    *MeetingService
	Item       *ItemService
	Matter     *MatterService
	Appearance *AppearanceService
	Council    *CouncilService
	Committee  *CommitteeService
	Vote       *VoteService
	Cache      *CacheService
	Search     *SearchService
}

// New wires the full repository set. db is the raw pool behind client, used
// only by the search repository's full-text queries.
func New(client *ent.Client, db *sql.DB) *Services {
	council := NewCouncilService(client)
	return &Services{
		City:       NewCityService(client),
		Meeting:    NewMeetingService(client),
		Item:       NewItemService(client),
		Matter:     NewMatterService(client),
		Appearance: NewAppearanceService(client),
		Council:    council,
		Committee:  NewCommitteeService(client),
		Vote:       NewVoteService(client, council),
		Cache:      NewCacheService(client),
		Search:     NewSearchService(db),
	}
}
