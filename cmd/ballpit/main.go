// Command ballpit is an interactive demonstration of the quadtree and the
// object store working together: balls bounce around the boundary, every
// tick each ball is deleted at its old position and re-inserted at the new
// one, and connected browsers receive the ball positions, the live node
// rectangles and the k nearest balls to their cursor over a WebSocket.
package main

import (
	"encoding/json"
	"flag"
	"math/rand/v2"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/forestrie/go-quadtree/geom"
	"github.com/forestrie/go-quadtree/objstore"
	"github.com/forestrie/go-quadtree/quadtree"
)

const (
	worldW = 800.0
	worldH = 600.0
	kNear  = 5
)

type ball struct {
	id     uint64
	p      geom.Point
	vx, vy float64
}

// ballTag is the opaque payload stored per ball, looked up over the store's
// reverse identity index when a client asks about it.
type ballTag struct {
	Tag string `json:"tag"`
}

// world owns the tree, the store and the balls. It is only ever touched
// from the simulation loop goroutine; the structures themselves are
// unsynchronized by design.
type world struct {
	boundary geom.Rect
	tree     *quadtree.Tree
	store    *objstore.Store[geom.Point]
	balls    []*ball
}

func newWorld(log *zap.Logger, n, capacity, maxDepth int, rng *rand.Rand) *world {
	boundary := geom.NewRect(0, 0, worldW, worldH)
	tree, err := quadtree.NewWithMaxDepth(boundary, capacity, maxDepth)
	if err != nil {
		log.Fatal("bad tree parameters", zap.Error(err))
	}

	w := &world{
		boundary: boundary,
		tree:     tree,
		store:    objstore.NewWithCapacity[geom.Point](n),
	}
	for i := 0; i < n; i++ {
		p := geom.Point{
			X: rng.Float64() * worldW,
			Y: rng.Float64() * worldH,
		}
		tag := objstore.NewObject(ballTag{Tag: uuid.NewString()})
		id := w.store.Insert(p, tag)
		if !tree.Insert(quadtree.Item{ID: id, Point: p}) {
			log.Fatal("initial ball outside boundary", zap.Uint64("id", id))
		}
		w.balls = append(w.balls, &ball{
			id: id,
			p:  p,
			vx: (rng.Float64() - 0.5) * 200,
			vy: (rng.Float64() - 0.5) * 200,
		})
	}
	return w
}

// step advances every ball by dt seconds, bouncing off the walls. The tree
// is updated by exact-match delete at the old point followed by insert at
// the new one; the store entry's geometric key is updated in place.
func (w *world) step(dt float64) {
	for _, b := range w.balls {
		if !w.tree.Delete(b.id, b.p) {
			// Exact (id, point) removal cannot miss for a point we
			// inserted ourselves; if it does the tree and the balls have
			// diverged and the simulation is broken.
			panic("ballpit: tracked ball missing from tree")
		}

		b.p.X += b.vx * dt
		b.p.Y += b.vy * dt
		if b.p.X < 0 {
			b.p.X, b.vx = 0, -b.vx
		}
		if b.p.X >= worldW {
			b.p.X, b.vx = worldW-1e-6, -b.vx
		}
		if b.p.Y < 0 {
			b.p.Y, b.vy = 0, -b.vy
		}
		if b.p.Y >= worldH {
			b.p.Y, b.vy = worldH-1e-6, -b.vy
		}

		w.tree.Insert(quadtree.Item{ID: b.id, Point: b.p})
		if e := w.store.Get(b.id); e != nil {
			e.Geom = b.p
		}
	}
}

type ballFrame struct {
	ID uint64  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
}

type rectFrame struct {
	MinX float64 `json:"minX"`
	MinY float64 `json:"minY"`
	MaxX float64 `json:"maxX"`
	MaxY float64 `json:"maxY"`
}

type frame struct {
	Type    string      `json:"type"`
	Balls   []ballFrame `json:"balls"`
	Rects   []rectFrame `json:"rects"`
	Count   int         `json:"count"`
	Nearest []ballFrame `json:"nearest"`
}

type cursorMsg struct {
	Type string  `json:"type"`
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
}

type client struct {
	conn   *websocket.Conn
	mu     sync.Mutex
	cursor geom.Point
	hasCur bool
}

func (c *client) setCursor(p geom.Point) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cursor, c.hasCur = p, true
}

func (c *client) getCursor() (geom.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cursor, c.hasCur
}

type server struct {
	log      *zap.Logger
	world    *world
	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

func newServer(log *zap.Logger, w *world) *server {
	return &server{
		log:   log,
		world: w,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

func (s *server) handleWS(rw http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(rw, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	c := &client{conn: conn}

	s.mu.Lock()
	s.clients[c] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()
	s.log.Info("client connected", zap.String("remote", conn.RemoteAddr().String()), zap.Int("clients", n))

	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.clients, c)
		s.mu.Unlock()
		s.log.Info("client disconnected", zap.String("remote", conn.RemoteAddr().String()))
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var msg cursorMsg
		if err := json.Unmarshal(data, &msg); err != nil || msg.Type != "cursor" {
			continue
		}
		c.setCursor(geom.Point{X: msg.X, Y: msg.Y})
	}
}

// broadcast builds one shared frame plus a per-client nearest set and
// writes it to every connected client. Called from the simulation loop, so
// all tree and store access stays on one goroutine.
func (s *server) broadcast() {
	w := s.world

	base := frame{Type: "frame", Count: w.tree.Len()}
	for _, b := range w.balls {
		base.Balls = append(base.Balls, ballFrame{ID: b.id, X: b.p.X, Y: b.p.Y})
	}
	for _, r := range w.tree.AllRectangles() {
		base.Rects = append(base.Rects, rectFrame{MinX: r.MinX, MinY: r.MinY, MaxX: r.MaxX, MaxY: r.MaxY})
	}

	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		f := base
		if cur, ok := c.getCursor(); ok {
			for _, it := range w.tree.NearestNeighbors(cur, kNear) {
				f.Nearest = append(f.Nearest, ballFrame{ID: it.ID, X: it.Point.X, Y: it.Point.Y})
			}
		}
		data, err := json.Marshal(f)
		if err != nil {
			s.log.Error("marshal frame", zap.Error(err))
			return
		}
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			s.log.Debug("write failed, dropping client", zap.Error(err))
			c.conn.Close()
		}
	}
}

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	balls := flag.Int("balls", 200, "number of balls")
	capacity := flag.Int("capacity", 8, "items per node before subdividing")
	maxDepth := flag.Int("max-depth", 10, "hard subdivision ceiling")
	tick := flag.Duration("tick", 33*time.Millisecond, "simulation step interval")
	seed := flag.Uint64("seed", 1, "rng seed")
	flag.Parse()

	log, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	rng := rand.New(rand.NewPCG(*seed, *seed+1))
	w := newWorld(log, *balls, *capacity, *maxDepth, rng)
	srv := newServer(log, w)

	http.HandleFunc("/ws", srv.handleWS)
	http.HandleFunc("/", func(rw http.ResponseWriter, r *http.Request) {
		rw.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = rw.Write([]byte(indexHTML))
	})

	go func() {
		log.Info("listening", zap.String("addr", *addr), zap.Int("balls", *balls))
		if err := http.ListenAndServe(*addr, nil); err != nil {
			log.Fatal("http server", zap.Error(err))
		}
	}()

	ticker := time.NewTicker(*tick)
	defer ticker.Stop()
	for range ticker.C {
		w.step(tick.Seconds())
		srv.broadcast()
	}
}
