package world

import (
	"errors"
	"fmt"
)

// Ошибки мира. Вызывающий код сравнивает их через errors.Is.
var (
	// ErrBadLocation позиция вне мира, из другого мира, без мира или занята
	ErrBadLocation = errors.New("bad location")
	// ErrWrongMaterial материал не подходит для блока нужного вида
	ErrWrongMaterial = errors.New("wrong material")
	// ErrStackSize количество вне 1..64 или не 1 для инструмента/оружия
	ErrStackSize = errors.New("invalid stack size")
	// ErrBadInventoryPosition нет такого слота в инвентаре
	ErrBadInventoryPosition = errors.New("bad inventory position")
	// ErrEntityIsDead действие мёртвой сущности
	ErrEntityIsDead = errors.New("entity is dead")
	// ErrInvalidRepeatCount неположительное число повторов действия
	ErrInvalidRepeatCount = errors.New("invalid repeat count")
	// ErrInvalidWorldSize размер мира меньше 1
	ErrInvalidWorldSize = errors.New("invalid world size")
)

// WrongMaterialError сообщает, какой материал был отвергнут
type WrongMaterialError struct {
	Material Material
}

func (e *WrongMaterialError) Error() string {
	return fmt.Sprintf("wrong material: %s", e.Material)
}

func (e *WrongMaterialError) Unwrap() error {
	return ErrWrongMaterial
}

// BadInventoryPositionError сообщает номер недопустимого слота
type BadInventoryPositionError struct {
	Slot int
}

func (e *BadInventoryPositionError) Error() string {
	return fmt.Sprintf("bad inventory position: %d", e.Slot)
}

func (e *BadInventoryPositionError) Unwrap() error {
	return ErrBadInventoryPosition
}

func badLocation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrBadLocation, fmt.Sprintf(format, args...))
}
