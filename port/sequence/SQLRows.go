package sequence

import "io"

// SQLRows turns a database query into a Sequence.
// The query is executed on every Iterate, so each enumeration reads a fresh result set,
// and closing the Cursor closes the rows.
//
//	seq := sequence.SQLRows[Entity](func() (*sql.Rows, error) {
//		return db.QueryContext(ctx, `SELECT id, name FROM entities`)
//	}, mapper)
func SQLRows[T any, Rows sqlRows](query func() (Rows, error), mapper SQLRowMapper[T]) Sequence[T] {
	return Func[T](func() Cursor[T] {
		rows, err := query()
		if err != nil {
			return &errorCursor[T]{err: err}
		}
		return &sqlRowsCursor[T]{Rows: rows, Mapper: mapper}
	})
}

// sqlRowsCursor allow you to use the same cursor pattern with sql.Rows structure.
type sqlRowsCursor[T any] struct {
	Rows   sqlRows
	Mapper SQLRowMapper[T]

	value T
	err   error
}

type sqlRows interface {
	io.Closer
	Next() bool
	Err() error
	Scan(dest ...any) error
}

func (c *sqlRowsCursor[T]) Close() error {
	return c.Rows.Close()
}

func (c *sqlRowsCursor[T]) Next() bool {
	if c.err != nil {
		return false
	}
	if !c.Rows.Next() {
		return false
	}
	v, err := c.Mapper.Map(c.Rows)
	if err != nil {
		c.err = err
		return false
	}
	c.value = v
	return true
}

func (c *sqlRowsCursor[T]) Err() error {
	if c.err != nil {
		return c.err
	}
	return c.Rows.Err()
}

func (c *sqlRowsCursor[T]) Value() T {
	return c.value
}

type SQLRowScanner interface {
	Scan(...any) error
}

type SQLRowMapper[T any] interface {
	Map(s SQLRowScanner) (T, error)
}

type SQLRowMapperFunc[T any] func(SQLRowScanner) (T, error)

func (fn SQLRowMapperFunc[T]) Map(s SQLRowScanner) (T, error) { return fn(s) }
