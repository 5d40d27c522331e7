package message

import (
	"sort"

	"github.com/danevairena/SocialMediaBackend/internal/entity"
)

type conversation struct {
	peerID uint
	last   entity.Message
	unread int64
}

// later reports whether a was exchanged after b. Equal timestamps fall back to insertion order.
func later(a, b entity.Message) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.ID > b.ID
}

// foldConversations groups the viewer's messages by peer, keeping the latest
// message and the count of unseen peer-to-viewer messages. The result is
// ordered by latest message, most recent first.
func foldConversations(viewerID uint, messages []entity.Message) []conversation {
	byPeer := make(map[uint]*conversation)

	for _, m := range messages {
		if m.SenderID != viewerID && m.ReceiverID != viewerID {
			continue
		}
		peerID := m.SenderID
		if peerID == viewerID {
			peerID = m.ReceiverID
		}

		conv, ok := byPeer[peerID]
		if !ok {
			conv = &conversation{peerID: peerID, last: m}
			byPeer[peerID] = conv
		} else if later(m, conv.last) {
			conv.last = m
		}

		if m.ReceiverID == viewerID && m.SenderID == peerID && !m.Seen {
			conv.unread++
		}
	}

	out := make([]conversation, 0, len(byPeer))
	for _, conv := range byPeer {
		out = append(out, *conv)
	}
	sort.Slice(out, func(i, j int) bool {
		return later(out[i].last, out[j].last)
	})
	return out
}
