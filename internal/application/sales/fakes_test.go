package sales_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/uis-entornos/comercio-api/internal/domain"
	"github.com/uis-entornos/comercio-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorios en memoria para los tests de aplicación.
// El descuento de stock se serializa con un mutex, igual que el UPDATE
// condicional del adaptador real: nunca deja stock negativo.
// ──────────────────────────────────────────────────────────────────────────────

type fakeProductoRepo struct {
	mu        sync.Mutex
	productos map[string]*entity.Producto
}

func newFakeProductoRepo(productos ...*entity.Producto) *fakeProductoRepo {
	r := &fakeProductoRepo{productos: make(map[string]*entity.Producto)}
	for _, p := range productos {
		copia := *p
		r.productos[p.ID] = &copia
	}
	return r
}

func (r *fakeProductoRepo) Create(p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) GetByID(id string) (*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, nil
	}
	copia := *p
	return &copia, nil
}

func (r *fakeProductoRepo) List() ([]*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Producto, 0, len(r.productos))
	for _, p := range r.productos {
		copia := *p
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeProductoRepo) ListBySucursal(sucursalID string) ([]*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Producto, 0)
	for _, p := range r.productos {
		if p.SucursalID == sucursalID {
			copia := *p
			out = append(out, &copia)
		}
	}
	return out, nil
}

func (r *fakeProductoRepo) Update(p *entity.Producto) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.productos[p.ID]; !ok {
		return nil
	}
	copia := *p
	r.productos[p.ID] = &copia
	return nil
}

func (r *fakeProductoRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.productos, id)
	return nil
}

func (r *fakeProductoRepo) DecrementStock(id string, cantidad int) (*entity.Producto, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.productos[id]
	if !ok {
		return nil, domain.NewNotFound(domain.KindProducto, id)
	}
	if p.Stock < cantidad {
		return nil, &domain.InsufficientStockError{
			ProductoID:     p.ID,
			ProductoNombre: p.Nombre,
			Solicitado:     cantidad,
			Disponible:     p.Stock,
		}
	}
	p.Stock -= cantidad
	copia := *p
	return &copia, nil
}

// stockDe consulta el stock actual, para las aserciones.
func (r *fakeProductoRepo) stockDe(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.productos[id]; ok {
		return p.Stock
	}
	return -1
}

type fakeVentaRepo struct {
	mu        sync.Mutex
	ventas    []*entity.Venta
	createErr error // si no es nil, Create falla con este error
}

func newFakeVentaRepo(ventas ...*entity.Venta) *fakeVentaRepo {
	return &fakeVentaRepo{ventas: append([]*entity.Venta{}, ventas...)}
}

func (r *fakeVentaRepo) Create(v *entity.Venta) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	copia := *v
	copia.Detalles = append([]entity.DetalleVenta{}, v.Detalles...)
	r.ventas = append(r.ventas, &copia)
	return nil
}

func (r *fakeVentaRepo) GetByID(id string) (*entity.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, v := range r.ventas {
		if v.ID == id {
			copia := *v
			return &copia, nil
		}
	}
	return nil, nil
}

func (r *fakeVentaRepo) List() ([]*entity.Venta, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Venta, 0, len(r.ventas))
	for _, v := range r.ventas {
		copia := *v
		out = append(out, &copia)
	}
	return out, nil
}

func (r *fakeVentaRepo) SumTotalByFechaRange(_ context.Context, desde, hasta time.Time) (decimal.Decimal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	total := decimal.Zero
	for _, v := range r.ventas {
		if !v.Fecha.Before(desde) && v.Fecha.Before(hasta) {
			total = total.Add(v.Total)
		}
	}
	return total, nil
}

func (r *fakeVentaRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.ventas)
}

type fakeClienteRepo struct {
	clientes map[string]*entity.Cliente
}

func newFakeClienteRepo(clientes ...*entity.Cliente) *fakeClienteRepo {
	r := &fakeClienteRepo{clientes: make(map[string]*entity.Cliente)}
	for _, c := range clientes {
		r.clientes[c.ID] = c
	}
	return r
}

func (r *fakeClienteRepo) Create(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *fakeClienteRepo) GetByID(id string) (*entity.Cliente, error) {
	return r.clientes[id], nil
}
func (r *fakeClienteRepo) List() ([]*entity.Cliente, error) {
	out := make([]*entity.Cliente, 0, len(r.clientes))
	for _, c := range r.clientes {
		out = append(out, c)
	}
	return out, nil
}
func (r *fakeClienteRepo) Update(c *entity.Cliente) error { r.clientes[c.ID] = c; return nil }
func (r *fakeClienteRepo) Delete(id string) error         { delete(r.clientes, id); return nil }

type fakeEmpleadoRepo struct {
	empleados map[string]*entity.Empleado
}

func newFakeEmpleadoRepo(empleados ...*entity.Empleado) *fakeEmpleadoRepo {
	r := &fakeEmpleadoRepo{empleados: make(map[string]*entity.Empleado)}
	for _, e := range empleados {
		r.empleados[e.ID] = e
	}
	return r
}

func (r *fakeEmpleadoRepo) Create(e *entity.Empleado) error { r.empleados[e.ID] = e; return nil }
func (r *fakeEmpleadoRepo) GetByID(id string) (*entity.Empleado, error) {
	return r.empleados[id], nil
}
func (r *fakeEmpleadoRepo) FindByEmail(email string) (*entity.Empleado, error) {
	for _, e := range r.empleados {
		if e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEmpleadoRepo) FindByUsuario(usuario string) (*entity.Empleado, error) {
	for _, e := range r.empleados {
		if e.Usuario == usuario {
			return e, nil
		}
	}
	return nil, nil
}
func (r *fakeEmpleadoRepo) List() ([]*entity.Empleado, error) {
	out := make([]*entity.Empleado, 0, len(r.empleados))
	for _, e := range r.empleados {
		out = append(out, e)
	}
	return out, nil
}
func (r *fakeEmpleadoRepo) Update(e *entity.Empleado) error { r.empleados[e.ID] = e; return nil }
func (r *fakeEmpleadoRepo) Delete(id string) error          { delete(r.empleados, id); return nil }

type fakeSucursalRepo struct {
	sucursales map[string]*entity.Sucursal
}

func newFakeSucursalRepo(sucursales ...*entity.Sucursal) *fakeSucursalRepo {
	r := &fakeSucursalRepo{sucursales: make(map[string]*entity.Sucursal)}
	for _, s := range sucursales {
		r.sucursales[s.ID] = s
	}
	return r
}

func (r *fakeSucursalRepo) Create(s *entity.Sucursal) error { r.sucursales[s.ID] = s; return nil }
func (r *fakeSucursalRepo) GetByID(id string) (*entity.Sucursal, error) {
	return r.sucursales[id], nil
}
func (r *fakeSucursalRepo) List() ([]*entity.Sucursal, error) {
	out := make([]*entity.Sucursal, 0, len(r.sucursales))
	for _, s := range r.sucursales {
		out = append(out, s)
	}
	return out, nil
}
func (r *fakeSucursalRepo) Update(s *entity.Sucursal) error { r.sucursales[s.ID] = s; return nil }
func (r *fakeSucursalRepo) Delete(id string) error          { delete(r.sucursales, id); return nil }
