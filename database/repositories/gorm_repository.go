// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"reflect"
	"strings"

	"github.com/l3montree-dev/catalog/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepository[ID comparable, T utils.Tabler] struct {
	db *gorm.DB
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db: db,
	}
}

func (g *GormRepository[ID, T]) All() ([]T, error) {
	var ts []T
	err := g.db.Order("id").Find(&ts).Error
	return ts, err
}

func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Save(t).Error
}

func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	tx := g.db.Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := f(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}

	return g.db
}

// Create inserts t without touching associated records. Relations are
// written through the association helpers.
func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.GetDB(tx).Omit(clause.Associations).Create(t).Error
}

func (g *GormRepository[ID, T]) Read(id ID) (T, error) {
	var t T
	err := g.db.First(&t, "id = ?", id).Error

	return t, err
}

func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	res := g.GetDB(tx).Delete(&t, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (g *GormRepository[ID, T]) List(ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T

	err := g.db.Where("id IN ?", ids).Order("id").Find(&ts).Error
	if err != nil {
		return ts, err
	}
	return ts, nil
}

// AppendAssociation adds values to a many to many relation of owner.
// Pairs which already exist are ignored. The associated records themselves
// are never written.
func (g *GormRepository[ID, T]) AppendAssociation(tx *gorm.DB, owner *T, association string, values any) error {
	return g.GetDB(tx).Omit(association + ".*").Model(owner).Association(association).Append(values)
}

// ReplaceAssociation sets the many to many relation of owner to exactly values.
func (g *GormRepository[ID, T]) ReplaceAssociation(tx *gorm.DB, owner *T, association string, values any) error {
	assoc := g.GetDB(tx).Omit(association + ".*").Model(owner).Association(association)
	if v := reflect.ValueOf(values); v.Kind() == reflect.Slice && v.Len() == 0 {
		return assoc.Clear()
	}
	return assoc.Replace(values)
}

func (g *GormRepository[ID, T]) FindAssociation(owner *T, association string, out any) error {
	return g.db.Model(owner).Order("id").Association(association).Find(out)
}

func (g *GormRepository[ID, T]) UpdateColumn(tx *gorm.DB, id ID, column string, value any) error {
	var t T
	res := g.GetDB(tx).Model(&t).Where("id = ?", id).Update(column, value)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// searchPattern builds a case insensitive LIKE pattern. The argument is
// expected to be compared against LOWER(column).
func searchPattern(search string) string {
	replacer := strings.NewReplacer(`\`, `\\`, "%", `\%`, "_", `\_`)
	return "%" + replacer.Replace(strings.ToLower(strings.TrimSpace(search))) + "%"
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id")
}
