// Movierec - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/movierec

/*
Package dataset loads the four dataset tables into an immutable models.Snapshot.

Three sources are available, selected by dataset.source:

  - csv: reads the files directly with encoding/csv
  - duckdb: reads CSV or Parquet files through an in-memory DuckDB
  - mongo: reads the movies, users, watch_history and ratings collections

Every source produces raw string rows which then pass through the same row
rules, so a record accepted by one source is accepted by all of them:

	users          id,username,credential       (>= 3 fields, numeric id)
	movies         id,name,genre[,rating]       (>= 3 fields, numeric id)
	watch history  user_id,movie_id[,name]      (>= 2 fields, both numeric)
	ratings        id,...,rating                (numeric id, rating at the rating column)

Numeric means a non-empty run of ASCII digits. Rejected rows are skipped and
counted in the dataset_rows_skipped_total metric. Rows of the ratings file
that also carry a name and genre are merged into the catalog, the later row
winning, so the rating file doubles as the genre catalog.

A missing file yields an empty table and a warning, never an error.
*/
package dataset
