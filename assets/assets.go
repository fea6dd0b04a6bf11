package assets

import "embed"

// Migrations は golang-migrate 用の SQL マイグレーションです。
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir は Migrations 内のマイグレーションのディレクトリです。
const MigrationsDir = "migrations"

// EmployeesSchema は employees テーブルを作成する SQL を返します。
// 最初のマイグレーションと同一で、CREATE TABLE IF NOT EXISTS のため繰り返し実行できます。
func EmployeesSchema() string {
	b, err := Migrations.ReadFile(MigrationsDir + "/000001_create_employees.up.sql")
	if err != nil {
		panic(err)
	}
	return string(b)
}
