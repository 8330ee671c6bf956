// Package casefile holds the one case the game ships with: the Enigma
// Mansion floor plan and which suspect each of its clues points to.
package casefile

import (
	"fmt"

	"github.com/jwebster45206/detective-quest/pkg/mansion"
	"github.com/jwebster45206/detective-quest/pkg/suspects"
)

const Title = "Detective Quest: The Final Code"

const (
	RoomEntranceHall = "Entrance Hall"
	RoomLivingRoom   = "Living Room"
	RoomKitchen      = "Kitchen"
	RoomLibrary      = "Library"
	RoomButlersRoom  = "Butler's Room"
	RoomPantry       = "Pantry"
	RoomGarden       = "Garden"
)

const (
	SuspectButler   = "Butler"
	SuspectCook     = "Cook"
	SuspectGardener = "Gardener"
)

const (
	ClueWoolCoat       = "A sheep's wool coat was left in the entrance."
	ClueCigaretteButts = "The ashtray is full of hand-rolled cigarette butts."
	ClueChefKnife      = "The most expensive chef knife is missing from the knife block."
	ClueForgeryBook    = "The book 'How to Forge Identities' lies open at page 32."
	ClueLoveNote       = "A secret love note addressed to the Cook."
	ClueMuddyGloves    = "A pair of muddy rubber gloves was tossed in here."
	ClueTornNote       = "A torn note says 'meet me in the library'."
)

type roomSpec struct {
	name string
	clue string
}

var (
	entrance   = roomSpec{RoomEntranceHall, ClueWoolCoat}
	livingRoom = roomSpec{RoomLivingRoom, ClueCigaretteButts}
	kitchen    = roomSpec{RoomKitchen, ClueChefKnife}
	library    = roomSpec{RoomLibrary, ClueForgeryBook}
	butlers    = roomSpec{RoomButlersRoom, ClueLoveNote}
	pantry     = roomSpec{RoomPantry, ClueMuddyGloves}
	garden     = roomSpec{RoomGarden, ClueTornNote}
)

// Associations lists clue → suspect in insertion order.
var Associations = []suspects.Association{
	{Clue: ClueWoolCoat, Suspect: SuspectGardener},
	{Clue: ClueCigaretteButts, Suspect: SuspectCook},
	{Clue: ClueChefKnife, Suspect: SuspectCook},
	{Clue: ClueForgeryBook, Suspect: SuspectButler},
	{Clue: ClueLoveNote, Suspect: SuspectButler},
	{Clue: ClueMuddyGloves, Suspect: SuspectGardener},
	{Clue: ClueTornNote, Suspect: SuspectButler},
}

// BuildMansion wires the fixed floor plan:
//
//	             Entrance Hall
//	            /             \
//	    Living Room          Kitchen
//	     /       \           /     \
//	Library  Butler's Room  Pantry  Garden
func BuildMansion() (*mansion.Mansion, error) {
	specs := []roomSpec{entrance, livingRoom, kitchen, library, butlers, pantry, garden}
	rooms := make([]*mansion.Room, len(specs))
	for i, s := range specs {
		r, err := mansion.NewRoom(s.name, s.clue)
		if err != nil {
			return nil, fmt.Errorf("failed to create room %q: %w", s.name, err)
		}
		rooms[i] = r
	}

	root, left, right := rooms[0], rooms[1], rooms[2]
	root.Left = left
	root.Right = right
	left.Left = rooms[3]
	left.Right = rooms[4]
	right.Left = rooms[5]
	right.Right = rooms[6]

	return mansion.New(root)
}

// BuildIndex loads every association into a fresh index.
func BuildIndex() *suspects.Index {
	ix := suspects.New()
	for _, a := range Associations {
		ix.Insert(a.Clue, a.Suspect)
	}
	return ix
}

// Open builds both fixed structures for a new playthrough.
func Open() (*mansion.Mansion, *suspects.Index, error) {
	m, err := BuildMansion()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to build mansion: %w", err)
	}
	return m, BuildIndex(), nil
}
