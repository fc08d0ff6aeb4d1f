package game

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/annel0/blockworld/internal/logging"
	"github.com/annel0/blockworld/internal/world"
)

// ErrNoWorld действие до создания мира
var ErrNoWorld = errors.New("world is not created")

// Session связывает один мир с действиями игрока. Передаётся явно
// вместо глобального состояния. Не потокобезопасна.
type Session struct {
	ID uuid.UUID

	world     *world.World
	log       *logging.Logger
	metrics   *Metrics
	worldOpts []world.Option
}

// SessionOption настраивает сессию
type SessionOption func(*Session)

// WithLogger задаёт логгер действий
func WithLogger(l *logging.Logger) SessionOption {
	return func(s *Session) {
		s.log = l
	}
}

// WithMetrics подключает счётчики действий
func WithMetrics(m *Metrics) SessionOption {
	return func(s *Session) {
		s.metrics = m
	}
}

// WithWorldOptions передаёт опции в каждый создаваемый мир
func WithWorldOptions(opts ...world.Option) SessionOption {
	return func(s *Session) {
		s.worldOpts = append(s.worldOpts, opts...)
	}
}

// NewSession создаёт сессию без мира
func NewSession(opts ...SessionOption) *Session {
	s := &Session{
		ID:  uuid.New(),
		log: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CreateWorld генерирует новый мир и делает его текущим
func (s *Session) CreateWorld(seed int64, size int, name string) (*world.World, error) {
	w, err := world.NewWorld(seed, size, name, s.worldOpts...)
	if err != nil {
		return nil, fmt.Errorf("create world %q: %w", name, err)
	}

	s.world = w
	s.log.Info("Session %s: world %q created (seed=%d, size=%d, digest=%016x)",
		s.ID, name, seed, size, w.Digest())
	return w, nil
}

// World текущий мир или nil
func (s *Session) World() *world.World {
	return s.world
}

func (s *Session) checkPlayer(p *world.Player) error {
	if s.world == nil {
		return ErrNoWorld
	}
	if p.Location().World() != s.world {
		return fmt.Errorf("%w: player %s is not in world %s", world.ErrBadLocation, p.Name(), s.world.Name())
	}
	return nil
}

// ShowPlayerInfo описание игрока и окрестность 3x3x3 вокруг него
func (s *Session) ShowPlayerInfo(p *world.Player) (string, error) {
	if err := s.checkPlayer(p); err != nil {
		return "", err
	}

	around, err := s.world.NeighborhoodString(p.Location())
	if err != nil {
		return "", err
	}
	return p.String() + "\n" + around, nil
}

// MovePlayer двигает игрока на соседнюю клетку. Жидкость в новой клетке
// наносит урон, лежащие там предметы попадают в инвентарь.
func (s *Session) MovePlayer(p *world.Player, dx, dy, dz int) (world.Location, error) {
	loc, err := s.movePlayer(p, dx, dy, dz)
	s.metrics.action("move", err)
	return loc, err
}

func (s *Session) movePlayer(p *world.Player, dx, dy, dz int) (world.Location, error) {
	if err := s.checkPlayer(p); err != nil {
		return world.Location{}, err
	}

	loc, err := p.Move(dx, dy, dz)
	if err != nil {
		return world.Location{}, err
	}
	if err := enterCell(s.world, p, loc); err != nil {
		return loc, err
	}

	s.log.Debug("Player %s moved to %s", p.Name(), loc)
	return loc, nil
}

// SelectItem берёт в руку предмет из слота n
func (s *Session) SelectItem(p *world.Player, n int) error {
	err := s.checkPlayer(p)
	if err == nil {
		err = p.SelectItem(n)
	}
	s.metrics.action("select", err)
	return err
}

// OrientatePlayer поворачивает игрока к соседней клетке
func (s *Session) OrientatePlayer(p *world.Player, x, y, z int) (world.Location, error) {
	var loc world.Location
	err := s.checkPlayer(p)
	if err == nil {
		loc, err = p.Orientate(x, y, z)
	}
	s.metrics.action("orientate", err)
	return loc, err
}

// UseItem использует предмет в руке times раз. Еда съедается. Иначе
// действие направлено на клетку перед игроком: твёрдый блок получает удар,
// существо атакуется, а в пустую клетку или жидкость ставится блок из руки.
func (s *Session) UseItem(p *world.Player, times int) (Outcome, error) {
	out, err := s.useItem(p, times)
	s.metrics.action("use", err)
	return out, err
}

func (s *Session) useItem(p *world.Player, times int) (Outcome, error) {
	if err := s.checkPlayer(p); err != nil {
		return Outcome{}, err
	}

	// Цель вне мира отклоняется до того, как предмет потратит сытость
	target := p.Orientation()
	if inHand, ok := p.ItemInHand(); ok && !inHand.Material().IsEdible() &&
		!p.IsDead() && times > 0 && !world.CheckLocation(target) {
		return Outcome{}, fmt.Errorf("%w: %s is outside the world", world.ErrBadLocation, target)
	}

	item, ok, err := p.UseItemInHand(times)
	if err != nil {
		return Outcome{}, err
	}
	if !ok {
		return Outcome{Kind: OutcomeNone}, nil
	}
	if item.Material().IsEdible() {
		return Outcome{Kind: OutcomeAte}, nil
	}

	b, hasBlock, err := s.world.BlockAt(target)
	if err != nil {
		return Outcome{}, err
	}
	if hasBlock && b.IsSolid() {
		destroyed, dmg, err := s.HitBlock(p, times, target, b, item)
		return Outcome{Kind: OutcomeHitBlock, Target: target, Damage: dmg, Destroyed: destroyed}, err
	}

	c, hasCreature, err := s.world.CreatureAt(target)
	if err != nil {
		return Outcome{}, err
	}
	if hasCreature {
		killed, dmg, err := s.AttackCreature(p, times, target, c, item)
		return Outcome{Kind: OutcomeAttack, Target: target, Damage: dmg, Destroyed: killed}, err
	}

	if !item.Material().IsBlock() {
		return Outcome{Kind: OutcomeNone, Target: target}, nil
	}
	placed, err := world.NewBlock(item.Material())
	if err != nil {
		return Outcome{}, err
	}
	if err := s.world.AddBlock(target, placed); err != nil {
		return Outcome{}, err
	}
	s.log.Debug("Player %s placed %s at %s", p.Name(), placed, target)
	return Outcome{Kind: OutcomePlaced, Target: target}, nil
}

// HitBlock бьёт блок в клетке loc times раз предметом item.
// Возвращает, разрушен ли блок, и нанесённый урон. Жидкость не бьётся.
func (s *Session) HitBlock(p *world.Player, times int, loc world.Location, b world.Block, item world.ItemStack) (bool, float64, error) {
	if err := s.checkPlayer(p); err != nil {
		return false, 0, err
	}
	if b.IsLiquid() {
		return false, 0, nil
	}

	destroyed, dmg, err := hitBlock(s.world, times, loc, b, item)
	if err != nil {
		return false, dmg, err
	}
	s.metrics.dealt("block", dmg)
	if destroyed {
		s.log.Debug("Player %s destroyed %s at %s", p.Name(), b, loc)
	}
	return destroyed, dmg, nil
}

// AttackCreature атакует существо c в клетке loc. Возвращает, убито ли оно,
// и нанесённый урон.
func (s *Session) AttackCreature(p *world.Player, times int, loc world.Location, c *world.Creature, item world.ItemStack) (bool, float64, error) {
	if err := s.checkPlayer(p); err != nil {
		return false, 0, err
	}

	killed, dmg, err := attackCreature(s.world, p, times, loc, c, item)
	if err != nil {
		return killed, dmg, err
	}
	s.metrics.dealt("creature", dmg)
	if killed {
		s.log.Debug("Player %s killed %s", p.Name(), c)
	}
	return killed, dmg, nil
}
