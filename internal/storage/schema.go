package storage

const schema = `
CREATE EXTENSION IF NOT EXISTS vector;

CREATE TABLE IF NOT EXISTS videos (
	id           TEXT PRIMARY KEY,
	title        TEXT NOT NULL,
	url          TEXT NOT NULL,
	method       TEXT NOT NULL,
	processed_at TIMESTAMPTZ NOT NULL
);

CREATE TABLE IF NOT EXISTS sections (
	video_id  TEXT NOT NULL REFERENCES videos(id) ON DELETE CASCADE,
	position  INT NOT NULL,
	title     TEXT NOT NULL,
	text      TEXT NOT NULL,
	sentences TEXT[] NOT NULL,
	embedding vector,
	PRIMARY KEY (video_id, position)
);
`

const upsertVideoSQL = `
INSERT INTO videos (id, title, url, method, processed_at)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
	title = EXCLUDED.title,
	url = EXCLUDED.url,
	method = EXCLUDED.method,
	processed_at = EXCLUDED.processed_at
`

const deleteSectionsSQL = `DELETE FROM sections WHERE video_id = $1`

const insertSectionSQL = `
INSERT INTO sections (video_id, position, title, text, sentences, embedding)
VALUES ($1, $2, $3, $4, $5, $6)
`

// Rows with a different dimension than the query are skipped so that
// vectors from different embedding models never get compared.
const searchSQL = `
SELECT s.video_id, v.title, v.url, s.position, s.title, s.text,
       1 - (s.embedding <=> $1) AS similarity
FROM sections s
JOIN videos v ON v.id = s.video_id
WHERE s.embedding IS NOT NULL AND vector_dims(s.embedding) = $2
ORDER BY s.embedding <=> $1
LIMIT $3
`
