// db/migrate.go
package db

import "fmt"

const createUserRolesTableSQL = `
CREATE TABLE IF NOT EXISTS user_roles (
    role_id SERIAL PRIMARY KEY,
    role_name TEXT NOT NULL UNIQUE
);`

const seedUserRolesSQL = `
INSERT INTO user_roles (role_name) VALUES ('customer'), ('vendor'), ('admin')
ON CONFLICT (role_name) DO NOTHING;`

const createUsersTableSQL = `
CREATE TABLE IF NOT EXISTS users (
    user_id SERIAL PRIMARY KEY,
    username TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    full_name TEXT NOT NULL,
    phone TEXT NOT NULL,
    role_id INTEGER NOT NULL REFERENCES user_roles(role_id),
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
    last_login TIMESTAMP WITH TIME ZONE
);`

const createVendorProfilesTableSQL = `
CREATE TABLE IF NOT EXISTS vendor_profiles (
    vendor_id SERIAL PRIMARY KEY,
    user_id INTEGER NOT NULL REFERENCES users(user_id),
    company_name TEXT NOT NULL,
    business_license TEXT NOT NULL,
    commission_rate NUMERIC(5,2) NOT NULL DEFAULT 10,
    rating NUMERIC(3,2) NOT NULL DEFAULT 0,
    verification_status TEXT NOT NULL DEFAULT 'pending',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
    image_url TEXT
);`

const createDestinationsTableSQL = `
CREATE TABLE IF NOT EXISTS destinations (
    destination_id SERIAL PRIMARY KEY,
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url TEXT,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const createPendingDestinationsTableSQL = `
CREATE TABLE IF NOT EXISTS pending_destinations (
    pending_id SERIAL PRIMARY KEY,
    vendor_id INTEGER NOT NULL REFERENCES vendor_profiles(vendor_id),
    name TEXT NOT NULL,
    country TEXT NOT NULL,
    description TEXT NOT NULL,
    image_url TEXT,
    status TEXT NOT NULL DEFAULT 'pending',
    submitted_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
    reviewed_at TIMESTAMP WITH TIME ZONE,
    reviewed_by INTEGER
);`

const createPackagesTableSQL = `
CREATE TABLE IF NOT EXISTS packages (
    package_id SERIAL PRIMARY KEY,
    vendor_id INTEGER NOT NULL REFERENCES vendor_profiles(vendor_id),
    destination_id INTEGER NOT NULL REFERENCES destinations(destination_id),
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    duration_days INTEGER NOT NULL,
    max_travelers INTEGER NOT NULL,
    includes TEXT,
    image_url TEXT,
    adult_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    child_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    infant_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    economy_adult_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    economy_child_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    economy_infant_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    business_adult_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    business_child_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    business_infant_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    is_active INTEGER NOT NULL DEFAULT 1,
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const createPendingPackagesTableSQL = `
CREATE TABLE IF NOT EXISTS pending_packages (
    pending_pkg_id SERIAL PRIMARY KEY,
    vendor_id INTEGER NOT NULL REFERENCES vendor_profiles(vendor_id),
    destination_id INTEGER NOT NULL REFERENCES destinations(destination_id),
    name TEXT NOT NULL,
    description TEXT NOT NULL,
    duration_days INTEGER NOT NULL,
    max_travelers INTEGER NOT NULL,
    includes TEXT,
    image_url TEXT,
    adult_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    child_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    infant_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    economy_adult_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    economy_child_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    economy_infant_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    business_adult_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    business_child_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    business_infant_price NUMERIC(10,2) NOT NULL DEFAULT 0,
    status TEXT NOT NULL DEFAULT 'pending',
    submitted_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP,
    reviewed_at TIMESTAMP WITH TIME ZONE,
    reviewed_by INTEGER
);`

const createBookingsTableSQL = `
CREATE TABLE IF NOT EXISTS bookings (
    booking_id SERIAL PRIMARY KEY,
    booking_reference TEXT NOT NULL UNIQUE,
    user_id INTEGER NOT NULL REFERENCES users(user_id),
    package_id INTEGER NOT NULL REFERENCES packages(package_id),
    from_location TEXT NOT NULL,
    to_location TEXT NOT NULL,
    departure_date DATE NOT NULL,
    departure_time TEXT NOT NULL,
    return_date DATE,
    return_time TEXT,
    preferred_airline TEXT NOT NULL,
    preferred_seating TEXT NOT NULL,
    num_adults INTEGER NOT NULL,
    num_children INTEGER NOT NULL DEFAULT 0,
    num_infants INTEGER NOT NULL DEFAULT 0,
    num_travelers INTEGER NOT NULL,
    fare_type TEXT NOT NULL,
    message TEXT,
    total_price NUMERIC(10,2) NOT NULL,
    customer_full_name TEXT NOT NULL,
    customer_phone TEXT NOT NULL,
    customer_email TEXT NOT NULL,
    status TEXT NOT NULL DEFAULT 'pending',
    rejection_reason TEXT,
    payment_status TEXT NOT NULL DEFAULT 'Unpaid',
    payment_method TEXT,
    payment_date TIMESTAMP WITH TIME ZONE,
    payment_transaction_id TEXT,
    booking_date TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

const createReviewsTableSQL = `
CREATE TABLE IF NOT EXISTS reviews (
    review_id SERIAL PRIMARY KEY,
    package_id INTEGER NOT NULL REFERENCES packages(package_id),
    user_id INTEGER,
    user_name TEXT,
    rating INTEGER NOT NULL CHECK (rating BETWEEN 1 AND 5),
    comment TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT CURRENT_TIMESTAMP
);`

// RunMigrations executes all necessary database structure changes.
func RunMigrations() error {
	if DB == nil {
		return fmt.Errorf("database connection is nil, call InitDB first")
	}

	statements := []struct {
		name string
		sql  string
	}{
		{"user_roles", createUserRolesTableSQL},
		{"user_roles seed", seedUserRolesSQL},
		{"users", createUsersTableSQL},
		{"vendor_profiles", createVendorProfilesTableSQL},
		{"destinations", createDestinationsTableSQL},
		{"pending_destinations", createPendingDestinationsTableSQL},
		{"packages", createPackagesTableSQL},
		{"pending_packages", createPendingPackagesTableSQL},
		{"bookings", createBookingsTableSQL},
		{"reviews", createReviewsTableSQL},
	}

	for _, st := range statements {
		if _, err := DB.Exec(st.sql); err != nil {
			return fmt.Errorf("error running %s migration: %w", st.name, err)
		}
	}

	fmt.Println("Migrations completed successfully.")
	return nil
}
