package reader

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/analyzer"
	"github.com/1mirabbas/WhatsApp-Chat-Analyzer-With-DB/internal/infra/logger"
)

// Reader pulls messages, contacts, groups and media out of a WhatsApp
// message store (msgstore.db) and its optional companion contact database
// (wa.db). Both are opened read-only.
type Reader struct {
	msgstore *sql.DB
	wa       *sql.DB
	log      *logger.Logger
}

// Open connects to the message store and, when a path is given and the file
// exists, to the contact database. A missing msgstore is a hard failure; a
// missing wa.db only limits contact and group name resolution.
func Open(msgstorePath, waDBPath string, log *logger.Logger) (*Reader, error) {
	if _, err := os.Stat(msgstorePath); err != nil {
		return nil, fmt.Errorf("msgstore not found: %w", err)
	}

	msgstore, err := sql.Open("sqlite3", "file:"+msgstorePath+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open msgstore: %w", err)
	}

	r := &Reader{msgstore: msgstore, log: log}

	if waDBPath != "" {
		if _, err := os.Stat(waDBPath); err != nil {
			log.Warnf("wa.db not found at %s, contact and group analysis will be limited", waDBPath)
		} else {
			wa, err := sql.Open("sqlite3", "file:"+waDBPath+"?mode=ro")
			if err != nil {
				log.Warnf("Failed to open wa.db: %v", err)
			} else {
				r.wa = wa
			}
		}
	}

	return r, nil
}

// Close closes the database connections.
func (r *Reader) Close() error {
	var firstErr error
	if r.msgstore != nil {
		firstErr = r.msgstore.Close()
	}
	if r.wa != nil {
		if err := r.wa.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Dataset reads every table the analyzer consumes. Only the message table
// is required; everything else degrades to empty on failure.
func (r *Reader) Dataset() (analyzer.Dataset, error) {
	messages, err := r.Messages()
	if err != nil {
		return analyzer.Dataset{}, err
	}

	return analyzer.Dataset{
		Messages: messages,
		Contacts: r.Contacts(),
		Groups:   r.Groups(),
		Media:    r.MediaInfo(),
		AliasMap: r.AliasMap(),
	}, nil
}

// hasMessageColumn checks the message table schema for a column. Older
// exports predate the sender_jid_row_id normalization.
func (r *Reader) hasMessageColumn(name string) bool {
	rows, err := r.msgstore.Query(`PRAGMA table_info(message)`)
	if err != nil {
		return false
	}
	defer rows.Close()

	for rows.Next() {
		var cid int
		var colName, colType string
		var notNull, pk int
		var dflt sql.NullString
		if err := rows.Scan(&cid, &colName, &colType, &notNull, &dflt, &pk); err != nil {
			continue
		}
		if colName == name {
			return true
		}
	}
	return false
}

// Messages reads the full message table in timestamp order. Failure here is
// fatal: without messages there is nothing to analyze.
func (r *Reader) Messages() ([]analyzer.Message, error) {
	hasSenderJID := r.hasMessageColumn("sender_jid_row_id")

	query := `
		SELECT
			m._id,
			m.from_me,
			m.timestamp,
			m.text_data,
			m.message_type,
			m.status,
			j.raw_string AS chat_jid
		FROM message AS m
		LEFT JOIN chat AS c ON m.chat_row_id = c._id
		LEFT JOIN jid AS j ON c.jid_row_id = j._id
		WHERE m.chat_row_id > 0
		ORDER BY m.timestamp ASC
	`
	if hasSenderJID {
		query = `
		SELECT
			m._id,
			m.from_me,
			m.timestamp,
			m.text_data,
			m.message_type,
			m.status,
			j.raw_string AS chat_jid,
			sender_j.raw_string AS sender_jid
		FROM message AS m
		LEFT JOIN chat AS c ON m.chat_row_id = c._id
		LEFT JOIN jid AS j ON c.jid_row_id = j._id
		LEFT JOIN jid AS sender_j ON m.sender_jid_row_id = sender_j._id
		WHERE m.chat_row_id > 0
		ORDER BY m.timestamp ASC
		`
	}

	rows, err := r.msgstore.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}
	defer rows.Close()

	var messages []analyzer.Message
	sent, received := 0, 0
	for rows.Next() {
		var id int64
		var fromMe, msgType, status sql.NullInt64
		var timestamp sql.NullInt64
		var text, chatJID, senderJID sql.NullString

		if hasSenderJID {
			err = rows.Scan(&id, &fromMe, &timestamp, &text, &msgType, &status, &chatJID, &senderJID)
		} else {
			err = rows.Scan(&id, &fromMe, &timestamp, &text, &msgType, &status, &chatJID)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to scan message row: %w", err)
		}

		m := analyzer.Message{
			ID:        id,
			ChatJID:   chatJID.String,
			SenderJID: senderJID.String,
			FromMe:    fromMe.Int64 == 1,
			Timestamp: millisToTime(timestamp),
			Text:      text.String,
			HasText:   text.Valid,
			MediaType: analyzer.NormalizeRawType(int(msgType.Int64)),
			Status:    int(status.Int64),
		}
		messages = append(messages, m)
		if m.FromMe {
			sent++
		} else {
			received++
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read messages: %w", err)
	}

	r.log.Infof("Loaded %d messages (sent: %d, received: %d)", len(messages), sent, received)
	return messages, nil
}

// millisToTime converts an epoch-millisecond value into a time.Time.
// Null or non-positive timestamps become the zero time.
func millisToTime(v sql.NullInt64) time.Time {
	if !v.Valid || v.Int64 <= 0 {
		return time.Time{}
	}
	return time.UnixMilli(v.Int64).UTC()
}

// Contacts reads the contact book. With wa.db available, wa_contacts rows
// are enriched with alias-keyed copies so LID chats resolve to the same
// names. Without it, the msgstore jid table supplies bare identifiers.
func (r *Reader) Contacts() []analyzer.Contact {
	if r.wa == nil {
		return r.contactsFromJIDTable()
	}

	rows, err := r.wa.Query(`SELECT jid, display_name, given_name, status FROM wa_contacts`)
	if err != nil {
		r.log.Warnf("Failed to read contacts: %v", err)
		return nil
	}
	defer rows.Close()

	var contacts []analyzer.Contact
	byJID := make(map[string]analyzer.Contact)
	for rows.Next() {
		var jid sql.NullString
		var displayName, givenName, status sql.NullString
		if err := rows.Scan(&jid, &displayName, &givenName, &status); err != nil {
			continue
		}
		c := analyzer.Contact{
			JID:         jid.String,
			DisplayName: displayName.String,
			GivenName:   givenName.String,
			Status:      status.String,
		}
		contacts = append(contacts, c)
		byJID[c.JID] = c
	}

	// Copy names onto the alias identifiers so either key resolves.
	aliasRows := 0
	for _, pair := range r.AliasMap() {
		if c, ok := byJID[pair.JID]; ok {
			contacts = append(contacts, analyzer.Contact{
				JID:         pair.LID,
				DisplayName: c.DisplayName,
				GivenName:   c.GivenName,
				Status:      c.Status,
			})
			aliasRows++
		}
	}

	r.log.Infof("Loaded %d contacts (%d via alias mapping)", len(contacts), aliasRows)
	return contacts
}

// contactsFromJIDTable is the reduced fallback when wa.db is absent.
func (r *Reader) contactsFromJIDTable() []analyzer.Contact {
	rows, err := r.msgstore.Query(`
		SELECT j.raw_string, j.user
		FROM jid AS j
		WHERE j.type IN (0, 1)
	`)
	if err != nil {
		r.log.Warnf("Failed to read jid table: %v", err)
		return nil
	}
	defer rows.Close()

	var contacts []analyzer.Contact
	for rows.Next() {
		var jid, user sql.NullString
		if err := rows.Scan(&jid, &user); err != nil {
			continue
		}
		contacts = append(contacts, analyzer.Contact{JID: jid.String, DisplayName: user.String})
	}
	r.log.Infof("Loaded %d jid records (no wa.db)", len(contacts))
	return contacts
}

// AliasMap reads the LID to canonical JID mapping from the message store.
// Not every export has a jid_map table; that is not an error.
func (r *Reader) AliasMap() []analyzer.AliasPair {
	rows, err := r.msgstore.Query(`
		SELECT lid.raw_string, jid.raw_string
		FROM jid_map jm
		JOIN jid lid ON jm.lid_row_id = lid._id
		JOIN jid jid ON jm.jid_row_id = jid._id
	`)
	if err != nil {
		r.log.Debugf("No alias mapping available: %v", err)
		return nil
	}
	defer rows.Close()

	var pairs []analyzer.AliasPair
	for rows.Next() {
		var lid, jid sql.NullString
		if err := rows.Scan(&lid, &jid); err != nil {
			continue
		}
		if lid.String != "" && jid.String != "" {
			pairs = append(pairs, analyzer.AliasPair{LID: lid.String, JID: jid.String})
		}
	}
	return pairs
}

// Groups reads group conversations from the message store chat table.
func (r *Reader) Groups() []analyzer.Group {
	rows, err := r.msgstore.Query(`
		SELECT j.raw_string, c.subject, c.created_timestamp
		FROM chat AS c
		JOIN jid AS j ON c.jid_row_id = j._id
		WHERE j.raw_string LIKE '%@g.us'
	`)
	if err != nil {
		r.log.Warnf("Failed to read groups: %v", err)
		return nil
	}
	defer rows.Close()

	var groups []analyzer.Group
	for rows.Next() {
		var jid, subject sql.NullString
		var created sql.NullInt64
		if err := rows.Scan(&jid, &subject, &created); err != nil {
			continue
		}
		groups = append(groups, analyzer.Group{
			JID:       jid.String,
			Name:      subject.String,
			CreatedAt: millisToTime(created),
		})
	}
	r.log.Infof("Found %d groups", len(groups))
	return groups
}

// MediaInfo reads per-message attachment metadata, falling back to a
// reduced query when the message_media table is missing.
func (r *Reader) MediaInfo() []analyzer.MediaInfo {
	rows, err := r.msgstore.Query(`
		SELECT m._id, m.message_type, mm.file_size, mm.media_name, mm.mime_type, m.timestamp
		FROM message AS m
		LEFT JOIN message_media AS mm ON m._id = mm.message_row_id
		WHERE m.message_type > 0
	`)
	if err != nil {
		r.log.Warnf("Failed to read media table, using reduced query: %v", err)
		return r.mediaInfoReduced()
	}
	defer rows.Close()

	var media []analyzer.MediaInfo
	for rows.Next() {
		var id int64
		var msgType sql.NullInt64
		var size sql.NullInt64
		var name, mime sql.NullString
		var timestamp sql.NullInt64
		if err := rows.Scan(&id, &msgType, &size, &name, &mime, &timestamp); err != nil {
			continue
		}
		media = append(media, analyzer.MediaInfo{
			MessageID: id,
			MediaType: analyzer.NormalizeRawType(int(msgType.Int64)),
			Size:      size.Int64,
			Name:      name.String,
			MimeType:  mime.String,
			Timestamp: millisToTime(timestamp),
		})
	}
	r.log.Infof("Loaded %d media records", len(media))
	return media
}

func (r *Reader) mediaInfoReduced() []analyzer.MediaInfo {
	rows, err := r.msgstore.Query(`
		SELECT _id, message_type, timestamp FROM message WHERE message_type > 0
	`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var media []analyzer.MediaInfo
	for rows.Next() {
		var id int64
		var msgType, timestamp sql.NullInt64
		if err := rows.Scan(&id, &msgType, &timestamp); err != nil {
			continue
		}
		media = append(media, analyzer.MediaInfo{
			MessageID: id,
			MediaType: analyzer.NormalizeRawType(int(msgType.Int64)),
			Timestamp: millisToTime(timestamp),
		})
	}
	r.log.Infof("Loaded %d media records (reduced)", len(media))
	return media
}

// TableNames lists the tables of the message store, for debug logging.
func (r *Reader) TableNames() []string {
	rows, err := r.msgstore.Query(`SELECT name FROM sqlite_master WHERE type='table' ORDER BY name`)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			continue
		}
		names = append(names, name)
	}
	return names
}
