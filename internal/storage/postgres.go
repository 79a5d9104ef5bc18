package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"github.com/pgvector/pgvector-go"

	"github.com/nguyentantai21042004/script-extractor/internal/output"
)

var ErrEmptyVector = errors.New("empty query vector")

type sectionRow struct {
	position  int
	title     string
	text      string
	sentences []string
	embedding interface{}
}

// sectionRows flattens the document's paragraphs into rows. Paragraphs
// without an embedding get a NULL vector.
func sectionRows(doc output.Document) []sectionRow {
	sections := output.Sections(doc)
	rows := make([]sectionRow, len(sections))
	for i, sec := range sections {
		rows[i] = sectionRow{
			position:  i,
			title:     sec.Title,
			text:      sec.Text,
			sentences: sec.Sentences,
		}
		if i < len(doc.Result.Embeddings) && len(doc.Result.Embeddings[i]) > 0 {
			rows[i].embedding = pgvector.NewVector(doc.Result.Embeddings[i])
		}
	}
	return rows
}

// SaveTranscript upserts the video and replaces its sections in one
// transaction.
func (s *implStore) SaveTranscript(ctx context.Context, doc output.Document) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, upsertVideoSQL,
		doc.Video.ID,
		doc.Video.Title,
		doc.Video.URL,
		string(doc.Result.Method),
		doc.ProcessedAt,
	); err != nil {
		return fmt.Errorf("upsert video: %w", err)
	}

	if _, err = tx.ExecContext(ctx, deleteSectionsSQL, doc.Video.ID); err != nil {
		return fmt.Errorf("delete sections: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, insertSectionSQL)
	if err != nil {
		return fmt.Errorf("prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, row := range sectionRows(doc) {
		if _, err = stmt.ExecContext(ctx,
			doc.Video.ID,
			row.position,
			row.title,
			row.text,
			pq.Array(row.sentences),
			row.embedding,
		); err != nil {
			return fmt.Errorf("insert section %d: %w", row.position, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	s.logger.Debug(ctx, "Stored %s with %d sections", doc.Video.ID, len(doc.Result.Paragraphs))
	return nil
}

// Search returns the sections closest to vector by cosine distance.
func (s *implStore) Search(ctx context.Context, vector []float32, limit int) ([]SearchHit, error) {
	if len(vector) == 0 {
		return nil, ErrEmptyVector
	}
	if limit <= 0 {
		limit = 5
	}

	rows, err := s.db.QueryContext(ctx, searchSQL, pgvector.NewVector(vector), len(vector), limit)
	if err != nil {
		return nil, fmt.Errorf("search sections: %w", err)
	}
	defer rows.Close()

	var hits []SearchHit
	for rows.Next() {
		var hit SearchHit
		if err := rows.Scan(
			&hit.VideoID,
			&hit.VideoTitle,
			&hit.URL,
			&hit.Position,
			&hit.Title,
			&hit.Text,
			&hit.Similarity,
		); err != nil {
			return nil, fmt.Errorf("scan search hit: %w", err)
		}
		hits = append(hits, hit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("search sections: %w", err)
	}

	return hits, nil
}
