package services

import (
	"errors"

	"github.com/Dung-L3/SEP490-G20-sub000/entity"
	"github.com/Dung-L3/SEP490-G20-sub000/repository"

	"gorm.io/gorm"
)

var (
	ErrGroupTooSmall = errors.New("a table group needs at least 2 tables")
	ErrGroupNotFound = errors.New("table group not found")
	ErrTableGrouped  = errors.New("table already belongs to a group")
	ErrTableInUse    = errors.New("table has an active order")
)

type TableService struct {
	DB   *gorm.DB
	Repo *repository.TableRepository
}

func NewTableService(db *gorm.DB, repo *repository.TableRepository) *TableService {
	return &TableService{DB: db, Repo: repo}
}

// UpdateStatus is the staff override. Occupied→Occupied is a no-op success;
// moving a table to Occupied checks no open order already claims it, so two
// waiters cannot double-seat through this path.
func (s *TableService) UpdateStatus(tableID uint, to entity.TableStatus) error {
	t, err := s.Repo.Get(tableID)
	if err != nil {
		return ErrTableNotFound
	}
	if t.Status == to {
		return nil
	}
	if to == entity.TableOccupied {
		busy, err := s.Repo.HasActiveOrder(tableID)
		if err != nil {
			return err
		}
		if busy {
			return ErrTableInUse
		}
		affected, err := s.Repo.SetStatusGuard(s.DB, tableID,
			[]entity.TableStatus{entity.TableAvailable, entity.TableReserved}, entity.TableOccupied)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrTableOccupied
		}
		return nil
	}
	return s.Repo.SetStatus(tableID, to)
}

func (s *TableService) Get(tableID uint) (*entity.Table, error) {
	t, err := s.Repo.Get(tableID)
	if err != nil {
		return nil, ErrTableNotFound
	}
	return t, nil
}

func (s *TableService) ListAvailable() ([]entity.Table, error) {
	return s.Repo.ListByStatus(entity.TableAvailable)
}

func (s *TableService) ListByStatus(status entity.TableStatus) ([]entity.Table, error) {
	return s.Repo.ListByStatus(status)
}

func (s *TableService) ListByArea(areaID uint) ([]entity.Table, error) {
	return s.Repo.ListByArea(areaID)
}

func (s *TableService) ListAll() ([]entity.Table, error) {
	return s.Repo.ListAll()
}

// ----- Groups (merge / split) -----

// MergeTables creates a group over ≥2 distinct existing tables, none of which
// may already sit in a group.
func (s *TableService) MergeTables(tableIDs []uint, createdBy uint, notes string) (*entity.TableGroup, error) {
	distinct := make(map[uint]bool, len(tableIDs))
	for _, id := range tableIDs {
		distinct[id] = true
	}
	if len(distinct) < 2 {
		return nil, ErrGroupTooSmall
	}

	for id := range distinct {
		if _, err := s.Repo.Get(id); err != nil {
			return nil, ErrTableNotFound
		}
		grouped, err := s.Repo.IsGrouped(id)
		if err != nil {
			return nil, err
		}
		if grouped {
			return nil, ErrTableGrouped
		}
	}

	group := entity.TableGroup{CreatedBy: createdBy, Notes: notes}
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateGroup(tx, &group); err != nil {
			return err
		}
		for id := range distinct {
			item := entity.TableGroupItem{TableGroupID: group.ID, TableID: id}
			if err := s.Repo.AddGroupItem(tx, &item); err != nil {
				// unique index on table_id catches the race where two
				// merges grab the same table at once
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return ErrTableGrouped
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// DisbandGroup drops the grouping; each table keeps whatever individual
// status it last had.
func (s *TableService) DisbandGroup(groupID uint) error {
	if _, err := s.Repo.GetGroup(groupID); err != nil {
		return ErrGroupNotFound
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.DeleteGroup(tx, groupID)
	})
}

func (s *TableService) TablesInGroup(groupID uint) ([]entity.Table, error) {
	if _, err := s.Repo.GetGroup(groupID); err != nil {
		return nil, ErrGroupNotFound
	}
	return s.Repo.ListGroupTables(groupID)
}
