package vehicle

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/parkms/PMS-ParkingService/internal/domain"
)

const fieldSeparator = "|"

// Repository persists the vehicle ledger to a flat text file, one record
// per line:
//
//	vehicleNumber|vehicleType|slotNumber|entryTime|exitTime|status
//
// exitTime is empty while the vehicle is parked. A legacy five-field form
// without exitTime is still accepted on load. Save rewrites the whole file.
type Repository struct {
	path   string
	logger Logger
}

// NewRepository creates a file store at the given path.
func NewRepository(path string, logger Logger) *Repository {
	return &Repository{path: path, logger: logger}
}

// Path returns the location of the data file.
func (r *Repository) Path() string {
	return r.path
}

// Load reads all vehicle records from the data file. A missing file is not
// an error: it yields an empty ledger. Lines that fail to decode are
// skipped with a warning so one corrupt record cannot block startup.
func (r *Repository) Load() ([]*domain.Vehicle, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: Load - open %s: %v", ErrReadFile, r.path, err)
	}
	defer f.Close()

	var vehicles []*domain.Vehicle
	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		v, err := decodeRecord(line)
		if err != nil {
			r.logger.Warn("Load: skipping line %d of %s: %v", lineNo, r.path, err)
			continue
		}
		vehicles = append(vehicles, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: Load - scan %s: %v", ErrReadFile, r.path, err)
	}

	return vehicles, nil
}

// Save overwrites the data file with the given records.
func (r *Repository) Save(vehicles []*domain.Vehicle) error {
	var b strings.Builder
	for _, v := range vehicles {
		if v == nil {
			continue
		}
		b.WriteString(encodeRecord(v))
		b.WriteByte('\n')
	}

	if err := os.WriteFile(r.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("%w: Save - write %s: %v", ErrWriteFile, r.path, err)
	}
	return nil
}

// encodeRecord renders one vehicle as a data-file line.
func encodeRecord(v *domain.Vehicle) string {
	exit := ""
	if v.ExitTime != nil {
		exit = v.ExitTime.Format(domain.TimeFormat)
	}
	return strings.Join([]string{
		v.Number,
		string(v.Type),
		strconv.Itoa(v.SlotNumber),
		v.EntryTime.Format(domain.TimeFormat),
		exit,
		string(v.Status),
	}, fieldSeparator)
}

// decodeRecord parses one data-file line. Both the current six-field form
// and the legacy five-field form (no exitTime) are accepted.
func decodeRecord(line string) (*domain.Vehicle, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != 5 && len(parts) != 6 {
		return nil, fmt.Errorf("%w: expected 5 or 6 fields, got %d", ErrInvalidRecord, len(parts))
	}

	number := strings.TrimSpace(parts[0])
	if number == "" {
		return nil, fmt.Errorf("%w: empty vehicle number", ErrInvalidRecord)
	}

	vType, err := domain.ParseVehicleType(parts[1])
	if err != nil {
		return nil, fmt.Errorf("%w: vehicle type %q", ErrInvalidRecord, parts[1])
	}

	slotNumber, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return nil, fmt.Errorf("%w: slot number %q", ErrInvalidRecord, parts[2])
	}

	entry, err := time.ParseInLocation(domain.TimeFormat, strings.TrimSpace(parts[3]), time.Local)
	if err != nil {
		return nil, fmt.Errorf("%w: entry time %q", ErrInvalidRecord, parts[3])
	}

	var exitTime *time.Time
	statusField := parts[4]
	if len(parts) == 6 {
		statusField = parts[5]
		if raw := strings.TrimSpace(parts[4]); raw != "" {
			exit, err := time.ParseInLocation(domain.TimeFormat, raw, time.Local)
			if err != nil {
				return nil, fmt.Errorf("%w: exit time %q", ErrInvalidRecord, parts[4])
			}
			exitTime = &exit
		}
	}

	status, err := domain.ParseVehicleStatus(statusField)
	if err != nil {
		return nil, fmt.Errorf("%w: status %q", ErrInvalidRecord, statusField)
	}

	return &domain.Vehicle{
		Number:     number,
		Type:       vType,
		SlotNumber: slotNumber,
		EntryTime:  entry,
		ExitTime:   exitTime,
		Status:     status,
	}, nil
}
