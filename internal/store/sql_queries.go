package store

const (
	createUser = `INSERT INTO users (user_id, email, password_hash)
    VALUES ($1, $2, $3)
    RETURNING user_id, email, password_hash, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE email = $1;`

	findUserByID = `SELECT user_id, email, password_hash, created_at
    FROM users
    WHERE user_id = $1;`

	addToken = `INSERT INTO auth_tokens (user_id, purpose, token)
    VALUES ($1, $2, $3);`

	hasToken = `SELECT EXISTS (
		SELECT 1 FROM auth_tokens
		WHERE user_id = $1 AND purpose = $2 AND token = $3
	);`

	deleteToken = `DELETE FROM auth_tokens
		WHERE user_id = $1 AND token = $2;`

	deleteExpiredTokens = `DELETE FROM auth_tokens
		WHERE created_at < $1;`

	createTodo = `INSERT INTO todos (todo_id, user_id, text)
    VALUES ($1, $2, $3)
    RETURNING todo_id, text, completed, completed_at, user_id, created_at;`

	getAllTodos = `SELECT todo_id, text, completed, completed_at, user_id, created_at
		FROM todos
		WHERE user_id = $1
		ORDER BY created_at;`

	getTodoByID = `SELECT todo_id, text, completed, completed_at, user_id, created_at
		FROM todos
		WHERE todo_id = $1 AND user_id = $2;`

	deleteTodo = `DELETE FROM todos
		WHERE todo_id = $1 AND user_id = $2
		RETURNING todo_id, text, completed, completed_at, user_id, created_at;`
)
