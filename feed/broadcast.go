// file: feed/broadcast.go
package feed

import "street-scan/logger"

var broadcast = make(chan []byte, 64)

// HandleMessages fans every queued event out to all connected clients. Run it
// once from main in its own goroutine. A client whose send buffer is full is
// dropped rather than allowed to stall the loop.
func HandleMessages() {
	for msg := range broadcast {
		connectionsMu.Lock()
		for c := range connections {
			select {
			case c.send <- msg:
			default:
				logger.Warn.Printf("[HandleMessages] slow feed client %v dropped", c.conn.RemoteAddr())
				delete(connections, c)
				close(c.send)
			}
		}
		connectionsMu.Unlock()
	}
}

// InitTest resets the package state so tests start from a clean slate.
func InitTest() {
	connectionsMu.Lock()
	for c := range connections {
		delete(connections, c)
		close(c.send)
	}
	connectionsMu.Unlock()

	for {
		select {
		case <-broadcast:
		default:
			return
		}
	}
}
