package data

import "github.com/target/jobtracker-api/internal/data/database"

const applicationColumns = `id, job_title, company_name, application_date, status, notes`

const (
	applicationListQuery = `SELECT ` + applicationColumns + ` FROM applications ORDER BY id ASC`

	applicationFindQuery = `SELECT ` + applicationColumns + ` FROM applications WHERE id = ?`

	applicationInsertQuery = `
		INSERT INTO applications (job_title, company_name, application_date, status, notes)
		VALUES (?, ?, ?, ?, ?)
		RETURNING id`

	applicationUpdateQuery = `
		UPDATE applications
		SET job_title = ?, company_name = ?, application_date = ?, status = ?, notes = ?
		WHERE id = ?`

	applicationDeleteQuery = `DELETE FROM applications WHERE id = ?`
)

// applicationQueries holds the application statements bound for one dialect.
type applicationQueries struct {
	list   string
	find   string
	insert string
	update string
	remove string
}

func newApplicationQueries(d database.Dialect) applicationQueries {
	return applicationQueries{
		list:   d.Rebind(applicationListQuery),
		find:   d.Rebind(applicationFindQuery),
		insert: d.Rebind(applicationInsertQuery),
		update: d.Rebind(applicationUpdateQuery),
		remove: d.Rebind(applicationDeleteQuery),
	}
}
