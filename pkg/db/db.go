// Package db pkg/db/db.go provides SQLite persistence for the road
// registry, inspection history and booking state. Schedule output is
// derived data and is never stored here.
package db

import (
	"database/sql"
	"fmt"
	"log"

	// SQLite driver.
	_ "github.com/mattn/go-sqlite3"

	"github.com/VedantChandore/crcms/pkg/models"
)

const createTablesSQL = `
	CREATE TABLE IF NOT EXISTS roads (
		road_id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		district TEXT,
		taluka TEXT,
		jurisdiction TEXT,
		length_km REAL NOT NULL,
		surface_type TEXT NOT NULL,
		year_constructed INTEGER,
		terrain_type TEXT,
		slope_category TEXT,
		region_type TEXT,
		rainfall_category TEXT,
		flood_prone BOOLEAN NOT NULL DEFAULT 0,
		landslide_prone BOOLEAN NOT NULL DEFAULT 0,
		ghat_section BOOLEAN NOT NULL DEFAULT 0,
		tourism_route BOOLEAN NOT NULL DEFAULT 0,
		avg_daily_traffic REAL NOT NULL DEFAULT 0,
		truck_percentage REAL NOT NULL DEFAULT 0,
		iri_value REAL NOT NULL DEFAULT 0,
		potholes_per_km REAL NOT NULL DEFAULT 0,
		pothole_avg_depth_cm REAL NOT NULL DEFAULT 0,
		cracks_longitudinal_pct REAL NOT NULL DEFAULT 0,
		cracks_transverse_per_km REAL NOT NULL DEFAULT 0,
		alligator_cracking_pct REAL NOT NULL DEFAULT 0,
		rutting_depth_mm REAL NOT NULL DEFAULT 0,
		raveling_pct REAL NOT NULL DEFAULT 0,
		edge_breaking_pct REAL NOT NULL DEFAULT 0,
		patches_per_km REAL NOT NULL DEFAULT 0,
		condition_score REAL NOT NULL DEFAULT 0,
		band TEXT NOT NULL DEFAULT 'C'
	);

	CREATE TABLE IF NOT EXISTS inspections (
		id TEXT PRIMARY KEY,
		road_id TEXT NOT NULL,
		date TIMESTAMP NOT NULL,
		agency TEXT,
		condition_score REAL NOT NULL,
		surface_damage_pct REAL NOT NULL DEFAULT 0,
		waterlogging BOOLEAN NOT NULL DEFAULT 0,
		drainage_status TEXT,
		remarks TEXT,
		FOREIGN KEY (road_id) REFERENCES roads(road_id)
	);

	CREATE TABLE IF NOT EXISTS bookings (
		road_id TEXT PRIMARY KEY,
		scheduled_date TIMESTAMP NOT NULL,
		agency TEXT NOT NULL,
		work_type TEXT NOT NULL,
		created_at TIMESTAMP NOT NULL,
		FOREIGN KEY (road_id) REFERENCES roads(road_id)
	);

	CREATE INDEX IF NOT EXISTS idx_inspections_road_date
		ON inspections(road_id, date);
`

// DB wraps the SQLite connection.
type DB struct {
	*sql.DB
}

// New opens (or creates) the database at dbPath and initializes the schema.
func New(dbPath string) (*DB, error) {
	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedOpenDB, err)
	}

	if _, err := sqlDB.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToEnableWAL, err)
	}

	db := &DB{sqlDB}
	if err := db.initSchema(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToInit, err)
	}

	return db, nil
}

func (db *DB) initSchema() error {
	_, err := db.Exec(createTablesSQL)

	return err
}

// UpsertRoad writes a road's full attribute set. Inspection history is
// stored separately and is not touched here.
func (db *DB) UpsertRoad(road *models.RoadAsset) error {
	const upsertSQL = `
		INSERT INTO roads (
			road_id, name, district, taluka, jurisdiction, length_km,
			surface_type, year_constructed, terrain_type, slope_category,
			region_type, rainfall_category, flood_prone, landslide_prone,
			ghat_section, tourism_route, avg_daily_traffic, truck_percentage,
			iri_value, potholes_per_km, pothole_avg_depth_cm,
			cracks_longitudinal_pct, cracks_transverse_per_km,
			alligator_cracking_pct, rutting_depth_mm, raveling_pct,
			edge_breaking_pct, patches_per_km, condition_score, band
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(road_id) DO UPDATE SET
			name = excluded.name,
			district = excluded.district,
			taluka = excluded.taluka,
			jurisdiction = excluded.jurisdiction,
			length_km = excluded.length_km,
			surface_type = excluded.surface_type,
			year_constructed = excluded.year_constructed,
			terrain_type = excluded.terrain_type,
			slope_category = excluded.slope_category,
			region_type = excluded.region_type,
			rainfall_category = excluded.rainfall_category,
			flood_prone = excluded.flood_prone,
			landslide_prone = excluded.landslide_prone,
			ghat_section = excluded.ghat_section,
			tourism_route = excluded.tourism_route,
			avg_daily_traffic = excluded.avg_daily_traffic,
			truck_percentage = excluded.truck_percentage,
			iri_value = excluded.iri_value,
			potholes_per_km = excluded.potholes_per_km,
			pothole_avg_depth_cm = excluded.pothole_avg_depth_cm,
			cracks_longitudinal_pct = excluded.cracks_longitudinal_pct,
			cracks_transverse_per_km = excluded.cracks_transverse_per_km,
			alligator_cracking_pct = excluded.alligator_cracking_pct,
			rutting_depth_mm = excluded.rutting_depth_mm,
			raveling_pct = excluded.raveling_pct,
			edge_breaking_pct = excluded.edge_breaking_pct,
			patches_per_km = excluded.patches_per_km,
			condition_score = excluded.condition_score,
			band = excluded.band
	`

	d := road.Distress

	_, err := db.Exec(upsertSQL,
		road.RoadID, road.Name, road.District, road.Taluka, road.Jurisdiction,
		road.LengthKM, string(road.SurfaceType), road.YearConstructed,
		road.TerrainType, road.SlopeCategory, road.RegionType,
		road.RainfallCategory, road.FloodProne, road.LandslideProne,
		road.GhatSection, road.TourismRoute, road.AvgDailyTraffic,
		road.TruckPercentage, road.IRIValue, d.PotholesPerKM,
		d.PotholeAvgDepthCM, d.CracksLongitudinalPct, d.CracksTransversePerKM,
		d.AlligatorCrackingPct, d.RuttingDepthMM, d.RavelingPct,
		d.EdgeBreakingPct, d.PatchesPerKM, road.ConditionScore,
		string(road.Band))
	if err != nil {
		return fmt.Errorf("%w road: %w", ErrFailedToUpsert, err)
	}

	return nil
}

// ListRoads returns every road with its inspection history attached,
// history ordered by date ascending.
func (db *DB) ListRoads() ([]models.RoadAsset, error) {
	const querySQL = `
		SELECT road_id, name, district, taluka, jurisdiction, length_km,
			surface_type, year_constructed, terrain_type, slope_category,
			region_type, rainfall_category, flood_prone, landslide_prone,
			ghat_section, tourism_route, avg_daily_traffic, truck_percentage,
			iri_value, potholes_per_km, pothole_avg_depth_cm,
			cracks_longitudinal_pct, cracks_transverse_per_km,
			alligator_cracking_pct, rutting_depth_mm, raveling_pct,
			edge_breaking_pct, patches_per_km, condition_score, band
		FROM roads
		ORDER BY road_id
	`

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w roads: %w", ErrFailedToQuery, err)
	}

	defer closeRows(rows)

	var roads []models.RoadAsset

	for rows.Next() {
		road, err := scanRoad(rows)
		if err != nil {
			return nil, err
		}

		roads = append(roads, road)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w roads: %w", ErrFailedToQuery, err)
	}

	if err := db.attachInspections(roads); err != nil {
		return nil, err
	}

	return roads, nil
}

// GetRoad returns one road with its inspection history, or ErrRoadNotFound.
func (db *DB) GetRoad(roadID string) (*models.RoadAsset, error) {
	const querySQL = `
		SELECT road_id, name, district, taluka, jurisdiction, length_km,
			surface_type, year_constructed, terrain_type, slope_category,
			region_type, rainfall_category, flood_prone, landslide_prone,
			ghat_section, tourism_route, avg_daily_traffic, truck_percentage,
			iri_value, potholes_per_km, pothole_avg_depth_cm,
			cracks_longitudinal_pct, cracks_transverse_per_km,
			alligator_cracking_pct, rutting_depth_mm, raveling_pct,
			edge_breaking_pct, patches_per_km, condition_score, band
		FROM roads
		WHERE road_id = ?
	`

	rows, err := db.Query(querySQL, roadID)
	if err != nil {
		return nil, fmt.Errorf("%w road: %w", ErrFailedToQuery, err)
	}

	defer closeRows(rows)

	if !rows.Next() {
		return nil, fmt.Errorf("%w: %s", ErrRoadNotFound, roadID)
	}

	road, err := scanRoad(rows)
	if err != nil {
		return nil, err
	}

	history, err := db.ListInspections(roadID)
	if err != nil {
		return nil, err
	}

	road.Inspections = history

	return &road, nil
}

// InsertInspection appends one inspection record. Records are immutable;
// there is deliberately no update path.
func (db *DB) InsertInspection(rec *models.InspectionRecord) error {
	const insertSQL = `
		INSERT INTO inspections
			(id, road_id, date, agency, condition_score, surface_damage_pct,
			 waterlogging, drainage_status, remarks)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := db.Exec(insertSQL,
		rec.ID, rec.RoadID, rec.Date, rec.Agency, rec.ConditionScore,
		rec.SurfaceDamagePct, rec.Waterlogging, rec.DrainageStatus,
		rec.Remarks)
	if err != nil {
		return fmt.Errorf("%w inspection: %w", ErrFailedToInsert, err)
	}

	return nil
}

// ListInspections returns a road's history ordered by date ascending.
func (db *DB) ListInspections(roadID string) ([]models.InspectionRecord, error) {
	const querySQL = `
		SELECT id, road_id, date, agency, condition_score,
			surface_damage_pct, waterlogging, drainage_status, remarks
		FROM inspections
		WHERE road_id = ?
		ORDER BY date ASC
	`

	rows, err := db.Query(querySQL, roadID)
	if err != nil {
		return nil, fmt.Errorf("%w inspections: %w", ErrFailedToQuery, err)
	}

	defer closeRows(rows)

	return scanInspections(rows)
}

// UpsertBooking writes the human-initiated scheduling state for a road.
func (db *DB) UpsertBooking(booking *models.Booking) error {
	const upsertSQL = `
		INSERT INTO bookings (road_id, scheduled_date, agency, work_type, created_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(road_id) DO UPDATE SET
			scheduled_date = excluded.scheduled_date,
			agency = excluded.agency,
			work_type = excluded.work_type,
			created_at = excluded.created_at
	`

	_, err := db.Exec(upsertSQL,
		booking.RoadID, booking.ScheduledDate, booking.Agency,
		booking.WorkType, booking.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w booking: %w", ErrFailedToUpsert, err)
	}

	return nil
}

// DeleteBooking clears a road's booking, typically after the inspection it
// booked has been recorded.
func (db *DB) DeleteBooking(roadID string) error {
	if _, err := db.Exec("DELETE FROM bookings WHERE road_id = ?", roadID); err != nil {
		return fmt.Errorf("%w booking: %w", ErrFailedToDelete, err)
	}

	return nil
}

// ListBookings returns all persisted booking state.
func (db *DB) ListBookings() ([]models.Booking, error) {
	const querySQL = `
		SELECT road_id, scheduled_date, agency, work_type, created_at
		FROM bookings
	`

	rows, err := db.Query(querySQL)
	if err != nil {
		return nil, fmt.Errorf("%w bookings: %w", ErrFailedToQuery, err)
	}

	defer closeRows(rows)

	var bookings []models.Booking

	for rows.Next() {
		var b models.Booking

		if err := rows.Scan(&b.RoadID, &b.ScheduledDate, &b.Agency,
			&b.WorkType, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("%w booking row: %w", ErrFailedToScan, err)
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// attachInspections loads the whole inspection table once and joins it
// onto the road slice in memory.
func (db *DB) attachInspections(roads []models.RoadAsset) error {
	const querySQL = `
		SELECT id, road_id, date, agency, condition_score,
			surface_damage_pct, waterlogging, drainage_status, remarks
		FROM inspections
		ORDER BY road_id, date ASC
	`

	rows, err := db.Query(querySQL)
	if err != nil {
		return fmt.Errorf("%w inspections: %w", ErrFailedToQuery, err)
	}

	defer closeRows(rows)

	records, err := scanInspections(rows)
	if err != nil {
		return err
	}

	byRoad := make(map[string][]models.InspectionRecord)
	for _, rec := range records {
		byRoad[rec.RoadID] = append(byRoad[rec.RoadID], rec)
	}

	for i := range roads {
		roads[i].Inspections = byRoad[roads[i].RoadID]
	}

	return nil
}

func scanRoad(rows *sql.Rows) (models.RoadAsset, error) {
	var (
		road        models.RoadAsset
		surfaceType string
		band        string
	)

	err := rows.Scan(
		&road.RoadID, &road.Name, &road.District, &road.Taluka,
		&road.Jurisdiction, &road.LengthKM, &surfaceType,
		&road.YearConstructed, &road.TerrainType, &road.SlopeCategory,
		&road.RegionType, &road.RainfallCategory, &road.FloodProne,
		&road.LandslideProne, &road.GhatSection, &road.TourismRoute,
		&road.AvgDailyTraffic, &road.TruckPercentage, &road.IRIValue,
		&road.Distress.PotholesPerKM, &road.Distress.PotholeAvgDepthCM,
		&road.Distress.CracksLongitudinalPct, &road.Distress.CracksTransversePerKM,
		&road.Distress.AlligatorCrackingPct, &road.Distress.RuttingDepthMM,
		&road.Distress.RavelingPct, &road.Distress.EdgeBreakingPct,
		&road.Distress.PatchesPerKM, &road.ConditionScore, &band)
	if err != nil {
		return models.RoadAsset{}, fmt.Errorf("%w road row: %w", ErrFailedToScan, err)
	}

	road.SurfaceType = models.SurfaceType(surfaceType)
	road.Band = models.Band(band)

	return road, nil
}

func scanInspections(rows *sql.Rows) ([]models.InspectionRecord, error) {
	var records []models.InspectionRecord

	for rows.Next() {
		var rec models.InspectionRecord

		if err := rows.Scan(&rec.ID, &rec.RoadID, &rec.Date, &rec.Agency,
			&rec.ConditionScore, &rec.SurfaceDamagePct, &rec.Waterlogging,
			&rec.DrainageStatus, &rec.Remarks); err != nil {
			return nil, fmt.Errorf("%w inspection row: %w", ErrFailedToScan, err)
		}

		records = append(records, rec)
	}

	return records, rows.Err()
}

func closeRows(rows *sql.Rows) {
	if err := rows.Close(); err != nil {
		log.Printf("failed to close rows: %v", err)
	}
}
