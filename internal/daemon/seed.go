package daemon

import (
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/editor"
)

// seed creates one example record per record type when the database is empty.
func seed(ed *editor.Service) error {
	recs, err := ed.Records("")
	if err != nil {
		return err
	}

	if len(recs) > 0 {
		return nil
	}

	for _, recordType := range ed.Types() {
		rec, err := ed.CreateRecord(recordType, "Example "+recordType)
		if err != nil {
			return err
		}

		log.Debug().Uint64("record", rec.ID).Str("type", recordType).Msg("example record created")
	}

	return nil
}
