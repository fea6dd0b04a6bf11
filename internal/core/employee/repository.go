package employee

import "context"

// Repository は従業員永続化の抽象です。
type Repository interface {
	// EnsureSchema はテーブルが存在しなければ作成します。何度呼び出しても安全です。
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, employee *Employee) error
	// LoadAll は全行を取得順に返します。不正な行が 1 件でもあればエラーで中断します。
	LoadAll(ctx context.Context) ([]*Employee, error)
}
