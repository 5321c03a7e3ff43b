package source

import (
	"context"
	"database/sql"
	"time"

	"github.com/go-gota/gota/dataframe"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pingcap/errors"
	"go.uber.org/zap"
)

// Load loads the source table opt points at.
func Load(ctx context.Context, opt Option) (dataframe.DataFrame, error) {
	if opt.CSV != "" {
		return LoadCSV(opt.CSV)
	}
	if opt.IsSQL() {
		return LoadQuery(ctx, opt)
	}
	return dataframe.DataFrame{}, errors.New("no source table: set a csv file or a database query")
}

// LoadQuery runs opt.Query and returns its result set, every value as text.
// NULLs become empty strings.
func LoadQuery(ctx context.Context, opt Option) (df dataframe.DataFrame, re error) {
	if opt.Query == "" {
		return dataframe.DataFrame{}, errors.New("no query")
	}
	driver, dsn := opt.driver(), opt.DataSourceName()
	db, err := sql.Open(driver, dsn)
	if err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return dataframe.DataFrame{}, errors.Trace(err)
	}

	begin := time.Now()
	rows, err := db.QueryContext(ctx, opt.Query)
	if err != nil {
		return dataframe.DataFrame{}, errors.Annotatef(err, "run sql=%v", opt.Query)
	}
	defer func() {
		if err := rows.Close(); err != nil && re == nil {
			re = errors.Trace(err)
		}
	}()

	records, err := scanRecords(rows)
	if err != nil {
		return dataframe.DataFrame{}, err
	}
	zap.L().Info("source table loaded",
		zap.String("driver", driver),
		zap.Int("rows", len(records)-1),
		zap.Duration("cost", time.Since(begin)))
	return loadRecords(records)
}

// scanRecords returns the header followed by every row as strings.
func scanRecords(rows *sql.Rows) ([][]string, error) {
	cols, err := rows.Columns()
	if err != nil {
		return nil, errors.Trace(err)
	}
	records := [][]string{cols}
	nCols := len(cols)
	for rows.Next() {
		cells := make([]sql.NullString, nCols)
		ptrs := make([]interface{}, nCols)
		for i := range cells {
			ptrs[i] = &cells[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, errors.Trace(err)
		}
		record := make([]string, nCols)
		for i, c := range cells {
			record[i] = c.String
		}
		records = append(records, record)
	}
	return records, errors.Trace(rows.Err())
}
