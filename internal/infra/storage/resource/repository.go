package resource

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ResourceScheduler/pkg/psqlbuilder"
)

const tableResources = "resources"

// Repository каталог ресурсов в PostgreSQL.
// Хранит только имена ресурсов; бронирования в БД не сохраняются.
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога ресурсов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListNames возвращает имена активных ресурсов в порядке регистрации.
// Порядок важен: он определяет порядок поиска при first-fit.
func (r *Repository) ListNames(ctx context.Context) ([]string, error) {
	query, args, err := buildListQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: ListNames - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListNames - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	names := make([]string, 0)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("%w: ListNames - scan name: %v", ErrScanRow, err)
		}
		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListNames - rows error: %v", ErrScanRow, err)
	}

	return names, nil
}

// Create добавляет ресурс в каталог и возвращает его ID в БД
func (r *Repository) Create(ctx context.Context, name string) (int64, error) {
	query, args, err := buildInsertQuery(name)
	if err != nil {
		return 0, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var id int64
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return id, nil
}

func buildListQuery() (string, []interface{}, error) {
	return psqlbuilder.Select("name").
		From(tableResources).
		Where(squirrel.Eq{"active": true}).
		OrderBy("position ASC", "id ASC").
		ToSql()
}

// position новой записи - следующий после максимального, чтобы порядок сохранялся
func buildInsertQuery(name string) (string, []interface{}, error) {
	return psqlbuilder.Insert(tableResources).
		Columns("name", "position", "active").
		Values(
			name,
			squirrel.Expr("(SELECT COALESCE(MAX(position), 0) + 1 FROM " + tableResources + ")"),
			true,
		).
		Suffix("RETURNING id").
		ToSql()
}
