package store

import (
	sq "github.com/Masterminds/squirrel"
)

const todosTable = "todos"

var todoColumns = []string{"id", "text", "done"}

// buildListTodosQuery builds the SELECT used by GetAll. orderBy entries are
// already allow-list filtered column/direction pairs; an empty list produces
// a query without an ORDER BY clause, mirroring how an all-invalid order-by
// request degrades to unordered output.
func buildListTodosQuery(b sq.StatementBuilderType, limit uint64, orderBy []string) (string, []any, error) {
	query := b.Select(todoColumns...).From(todosTable)

	if len(orderBy) > 0 {
		query = query.OrderBy(orderBy...)
	}

	return query.Limit(limit).ToSql()
}

func buildGetTodoQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(todoColumns...).
		From(todosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildInsertTodoQuery(b sq.StatementBuilderType, text string, done bool) (string, []any, error) {
	return b.Insert(todosTable).
		Columns("text", "done").
		Values(text, done).
		ToSql()
}

// buildUpdateTodoQuery builds a partial UPDATE setting only the supplied
// fields. Neither field supplied is an error: an UPDATE needs at least one
// SET clause.
func buildUpdateTodoQuery(b sq.StatementBuilderType, id int64, text *string, done *bool) (string, []any, error) {
	if text == nil && done == nil {
		return "", nil, ErrBuildingSQLQuery
	}

	query := b.Update(todosTable)
	if text != nil {
		query = query.Set("text", *text)
	}
	if done != nil {
		query = query.Set("done", *done)
	}

	return query.Where(sq.Eq{"id": id}).ToSql()
}

func buildDeleteTodoQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Delete(todosTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}
