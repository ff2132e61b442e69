package sqlite

// SchemaVersion is recorded in schema_meta. There is no migration runner:
// every statement below is additive and idempotent.
const SchemaVersion = 1

// Tables in dependency order.
var schemaDDL = []string{
	`CREATE TABLE IF NOT EXISTS schema_meta (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		version INTEGER NOT NULL,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL UNIQUE,
		description TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS role_permissions (
		role_id INTEGER NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		permission_id INTEGER NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
		PRIMARY KEY (role_id, permission_id)
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		full_name TEXT NOT NULL DEFAULT '',
		role_id INTEGER NOT NULL REFERENCES roles(id),
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS vendors (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		contact_person TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL,
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		pincode TEXT NOT NULL DEFAULT '',
		gst_number TEXT NOT NULL DEFAULT '',
		bank_name TEXT NOT NULL DEFAULT '',
		account_number TEXT NOT NULL DEFAULT '',
		ifsc_code TEXT NOT NULL DEFAULT '',
		status TEXT NOT NULL DEFAULT 'Active' CHECK (status IN ('Active', 'Inactive')),
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS purchases (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		vendor_id INTEGER NOT NULL REFERENCES vendors(id),
		purchase_date TEXT NOT NULL,
		bill_number TEXT NOT NULL DEFAULT '',
		total_amount REAL NOT NULL DEFAULT 0,
		remarks TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS items (
		item_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		unit TEXT NOT NULL DEFAULT 'pcs',
		purchase_rate REAL NOT NULL DEFAULT 0,
		quantity INTEGER NOT NULL DEFAULT 0,
		purchase_date TEXT NOT NULL DEFAULT '',
		selling_price REAL,
		vendor_id INTEGER REFERENCES vendors(id) ON DELETE SET NULL,
		purchase_id INTEGER REFERENCES purchases(id) ON DELETE SET NULL,
		has_variants INTEGER NOT NULL DEFAULT 0,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS item_variants (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
		size TEXT NOT NULL,
		selling_price REAL NOT NULL,
		quantity INTEGER NOT NULL DEFAULT 0,
		purchase_id INTEGER REFERENCES purchases(id) ON DELETE SET NULL
	)`,
	`CREATE TABLE IF NOT EXISTS stock_movements (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		item_id TEXT NOT NULL REFERENCES items(item_id) ON DELETE CASCADE,
		variant_id INTEGER REFERENCES item_variants(id) ON DELETE SET NULL,
		quantity_change INTEGER NOT NULL,
		quantity_before INTEGER NOT NULL,
		quantity_after INTEGER NOT NULL CHECK (quantity_after >= 0),
		reason TEXT NOT NULL DEFAULT '',
		reference_type TEXT NOT NULL DEFAULT 'manual_adjustment',
		reference_id TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS sizes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		size TEXT NOT NULL,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS discounts (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		percentage REAL NOT NULL CHECK (percentage > 0 AND percentage <= 100),
		valid_days INTEGER NOT NULL DEFAULT 0,
		is_active INTEGER NOT NULL DEFAULT 1,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		name TEXT NOT NULL,
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		address TEXT NOT NULL DEFAULT '',
		discount_id INTEGER REFERENCES discounts(id) ON DELETE SET NULL,
		discount_percentage REAL,
		discount_start_date TEXT,
		discount_end_date TEXT,
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bills (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		invoice_number TEXT NOT NULL DEFAULT '',
		invoice_seq INTEGER,
		customer_id INTEGER REFERENCES customers(id) ON DELETE SET NULL,
		customer_name TEXT NOT NULL DEFAULT '',
		customer_phone TEXT NOT NULL DEFAULT '',
		total_pieces INTEGER NOT NULL DEFAULT 0,
		total_before_discount REAL NOT NULL DEFAULT 0,
		discount REAL NOT NULL DEFAULT 0,
		discount_amount REAL NOT NULL DEFAULT 0,
		total_after_discount REAL NOT NULL DEFAULT 0,
		payment_mode TEXT NOT NULL DEFAULT 'Cash',
		remarks TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS bill_items (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		bill_id INTEGER NOT NULL REFERENCES bills(id) ON DELETE CASCADE,
		item_code TEXT NOT NULL,
		item_name TEXT NOT NULL DEFAULT '',
		price REAL NOT NULL,
		size TEXT NOT NULL DEFAULT '',
		quantity INTEGER NOT NULL,
		discount REAL NOT NULL DEFAULT 0,
		total_amount REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		company_name TEXT NOT NULL DEFAULT '',
		gst_number TEXT NOT NULL DEFAULT '',
		phone TEXT NOT NULL DEFAULT '',
		email TEXT NOT NULL DEFAULT '',
		website TEXT NOT NULL DEFAULT '',
		logo_path TEXT NOT NULL DEFAULT '',
		address_line1 TEXT NOT NULL DEFAULT '',
		address_line2 TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		state TEXT NOT NULL DEFAULT '',
		pincode TEXT NOT NULL DEFAULT '',
		country TEXT NOT NULL DEFAULT '',
		invoice_prefix TEXT NOT NULL DEFAULT 'INV-',
		invoice_start_number INTEGER NOT NULL DEFAULT 1,
		currency_symbol TEXT NOT NULL DEFAULT '₹',
		terms TEXT NOT NULL DEFAULT '',
		footer_note TEXT NOT NULL DEFAULT '',
		updated_at TEXT NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
}

var indexDDL = []string{
	`CREATE INDEX IF NOT EXISTS idx_items_vendor ON items(vendor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_items_purchase ON items(purchase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_item_variants_item ON item_variants(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_item_variants_purchase ON item_variants(purchase_id)`,
	`CREATE INDEX IF NOT EXISTS idx_stock_movements_item ON stock_movements(item_id)`,
	`CREATE INDEX IF NOT EXISTS idx_purchases_vendor ON purchases(vendor_id)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_created_at ON bills(created_at)`,
	`CREATE INDEX IF NOT EXISTS idx_bills_customer ON bills(customer_id)`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_bills_invoice_number ON bills(invoice_number) WHERE invoice_number != ''`,
	`CREATE INDEX IF NOT EXISTS idx_bill_items_bill ON bill_items(bill_id)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_discount ON customers(discount_id)`,
}
