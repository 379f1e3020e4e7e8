package participant

import "github.com/rocketscienceinc/battleship/internal/entity"

// Tracker keeps the observer view of a participant. Embed it to get HitFeedback and CountHits.
type Tracker struct {
	view entity.View
}

func (that *Tracker) HitFeedback(coord entity.Coord, hit bool) {
	// the game only reports on-board targets
	_ = that.view.Record(coord, hit)
}

func (that *Tracker) CountHits() int {
	return that.view.CountHits()
}

// View - returns a snapshot of what has been learned about the opponent's board.
func (that *Tracker) View() entity.View {
	return that.view
}
